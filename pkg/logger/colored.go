package logger

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// coloredLogger is a thread-safe logger that highlights formatted values.
type coloredLogger struct {
	mu sync.Mutex
}

// NewColoredLogger creates a logger that styles format arguments for terminals.
func NewColoredLogger() Logger {
	return &coloredLogger{}
}

// Logf writes a formatted message to stdout with styled arguments.
func (c *coloredLogger) Logf(format string, args ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	styled := make([]interface{}, len(args))
	for i, arg := range args {
		styled[i] = valueStyle.Render(fmt.Sprint(arg))
	}
	fmt.Printf(labelStyle.Render(format)+"\n", styled...)
}
