package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addItemHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/add_item"
	cancelBookingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/complete_booking"
	createBookingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_booking"
	createServiceHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_service"
	deleteServiceHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/delete_service"
	fireMasterHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/fire_master"
	getBalanceHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_balance"
	getBookingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_bookings"
	getHistoryHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_history"
	getInventoryHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_inventory"
	getSalonHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_salon"
	getServicesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_services"
	getStaffHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_staff"
	hireMasterHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/hire_master"
	restockItemHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/restock_item"
	sellProductHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/sell_product"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
)

// NewRouter собирает HTTP маршруты поверх сервисов приложения
func NewRouter(a *App) *mux.Router {
	log := a.Logger

	// Инициализируем handlers
	getSalon := getSalonHandler.NewHandler(a.Salon, log)
	getBalance := getBalanceHandler.NewHandler(a.Salon, log)
	getStaff := getStaffHandler.NewHandler(a.Salon, log)
	hireMaster := hireMasterHandler.NewHandler(a.Salon, log)
	fireMaster := fireMasterHandler.NewHandler(a.Salon, log)
	getInventory := getInventoryHandler.NewHandler(a.Salon, log)
	addItem := addItemHandler.NewHandler(a.Salon, log)
	restockItem := restockItemHandler.NewHandler(a.Salon, log)
	sellProduct := sellProductHandler.NewHandler(a.SellProduct, log)
	getServices := getServicesHandler.NewHandler(a.Catalog, log)
	createService := createServiceHandler.NewHandler(a.Catalog, log)
	deleteService := deleteServiceHandler.NewHandler(a.Catalog, log)
	createBooking := createBookingHandler.NewHandler(a.CreateBooking, log)
	getBookings := getBookingsHandler.NewHandler(a.Bookings, log)
	getBooking := getBookingHandler.NewHandler(a.Bookings, log)
	completeBooking := completeBookingHandler.NewHandler(a.CompleteBooking, log)
	cancelBooking := cancelBookingHandler.NewHandler(a.Bookings, log)
	getHistory := getHistoryHandler.NewHandler(a.Bookings, log)

	r := mux.NewRouter()
	r.Use(middleware.Logging(log))
	r.Use(middleware.SaveStatus(a))

	// Добавляем metrics middleware (если метрики включены)
	if a.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(a.Metrics))
		r.Handle(a.Config.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", a.Config.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Салон ---
	api.HandleFunc("/salon", getSalon.Handle).Methods(http.MethodGet)

	// --- Штат ---
	api.HandleFunc("/staff", getStaff.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff", hireMaster.Handle).Methods(http.MethodPost)
	api.HandleFunc("/staff/{name}", fireMaster.Handle).Methods(http.MethodDelete)

	// --- Склад и продажи ---
	api.HandleFunc("/inventory", getInventory.Handle).Methods(http.MethodGet)
	api.HandleFunc("/inventory", addItem.Handle).Methods(http.MethodPost)
	api.HandleFunc("/inventory/{name}/restock", restockItem.Handle).Methods(http.MethodPost)
	api.HandleFunc("/inventory/{name}/sell", sellProduct.Handle).Methods(http.MethodPost)

	// --- Каталог услуг ---
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/services/{name}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Финансы ---
	api.HandleFunc("/finance/balance", getBalance.Handle).Methods(http.MethodGet)
	api.HandleFunc("/finance/history", getHistory.Handle).Methods(http.MethodGet)

	return r
}
