package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/app"
)

// Menu текстовое меню салона поверх сервисов приложения.
// Ошибка любого действия печатается как "[SALON ERROR]: ..." и сессия продолжается.
type Menu struct {
	app *app.App
	in  *bufio.Scanner
	out io.Writer
}

type menuAction struct {
	key   string
	label string
	run   func(ctx context.Context) error
}

func NewMenu(a *app.App, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		app: a,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run крутит главное меню до выбора Exit или конца ввода
func (m *Menu) Run(ctx context.Context) error {
	summary, err := m.app.Salon.GetSalon(ctx)
	if err != nil {
		return err
	}
	m.printf("\nWelcome to '%s' Salon Management System!\n", summary.Name)

	for {
		m.println("\n--- MAIN MENU ---")
		m.println("1. Staff Management")
		m.println("2. Inventory & Sales")
		m.println("3. Booking Management")
		m.println("4. Service Management")
		m.println("5. Finance & History")
		m.println("0. Exit")

		choice, err := m.prompt("Select an option: ")
		if err != nil {
			return m.exit(ctx, err)
		}

		switch choice {
		case "1":
			err = m.staffMenu(ctx)
		case "2":
			err = m.inventoryMenu(ctx)
		case "3":
			err = m.bookingMenu(ctx)
		case "4":
			err = m.serviceMenu(ctx)
		case "5":
			err = m.financeMenu(ctx)
		case "0":
			return m.exit(ctx, nil)
		default:
			m.println("Invalid input. Please try again.")
		}
		if err != nil {
			return m.exit(ctx, err)
		}
	}
}

func (m *Menu) exit(ctx context.Context, cause error) error {
	if cause != nil && !errors.Is(cause, io.EOF) {
		return cause
	}
	if err := m.app.Flush(ctx); err != nil {
		return err
	}
	m.println("Exiting... Have a nice day!")
	return nil
}

// submenu возвращает ошибку только при обрыве ввода
func (m *Menu) submenu(ctx context.Context, title, promptLabel string, actions []menuAction) error {
	for {
		m.printf("\n--- %s ---\n", title)
		for _, a := range actions {
			m.printf("%s. %s\n", a.key, a.label)
		}
		m.println("0. Back to Main Menu")

		choice, err := m.prompt(promptLabel)
		if err != nil {
			return err
		}
		if choice == "0" {
			return nil
		}

		handled := false
		for _, a := range actions {
			if a.key != choice {
				continue
			}
			handled = true
			if err := m.safeExecute(ctx, a.run); err != nil {
				return err
			}
		}
		if !handled {
			m.println("Invalid input. Please try again.")
		}
	}
}

func (m *Menu) safeExecute(ctx context.Context, action func(ctx context.Context) error) error {
	err := action(ctx)
	if errors.Is(err, io.EOF) {
		return err
	}
	if err != nil {
		m.printf("\n[SALON ERROR]: %v\n", err)
	}
	if saveErr := m.app.SaveError(); saveErr != nil {
		m.printf("[SALON WARNING]: changes are kept in memory but not saved: %v\n", saveErr)
	}
	return nil
}

func (m *Menu) prompt(label string) (string, error) {
	m.printf("%s", label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) promptInt(label string) (int, error) {
	raw, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return n, nil
}

func (m *Menu) promptFloat(label string) (float64, error) {
	raw, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return f, nil
}

// promptIndex читает номер из списка длины n и возвращает индекс с нуля
func (m *Menu) promptIndex(label string, n int) (int, error) {
	choice, err := m.promptInt(label)
	if err != nil {
		return 0, err
	}
	if choice < 1 || choice > n {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSelection, choice)
	}
	return choice - 1, nil
}

func (m *Menu) printf(format string, v ...interface{}) {
	_, _ = fmt.Fprintf(m.out, format, v...)
}

func (m *Menu) println(line string) {
	_, _ = fmt.Fprintln(m.out, line)
}
