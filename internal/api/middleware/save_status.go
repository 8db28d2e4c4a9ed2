package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

// SavedHeader выставляется в "no", если состояние салона не удалось сохранить
const SavedHeader = "X-Salon-Saved"

// SaveChecker сообщает об ошибке последнего сохранения
type SaveChecker interface {
	SaveError() error
}

type saveStatusWriter struct {
	http.ResponseWriter
	checker SaveChecker
	checked bool
}

func (w *saveStatusWriter) WriteHeader(status int) {
	w.check()
	w.ResponseWriter.WriteHeader(status)
}

func (w *saveStatusWriter) Write(b []byte) (int, error) {
	w.check()
	return w.ResponseWriter.Write(b)
}

func (w *saveStatusWriter) check() {
	if w.checked {
		return
	}
	w.checked = true
	if w.checker.SaveError() != nil {
		w.Header().Set(SavedHeader, "no")
	}
}

// SaveStatus помечает ответ заголовком SavedHeader, пока снимок не сохранен.
// Проверка идет в момент записи заголовков, то есть после операции.
func SaveStatus(checker SaveChecker) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(&saveStatusWriter{ResponseWriter: w, checker: checker}, r)
		})
	}
}
