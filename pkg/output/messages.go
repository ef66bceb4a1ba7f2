package output

import "fmt"

// Info prints an info message
func Info(msg string) {
	fmt.Println(StyleIfTerminal(valueStyle, "⋯ "+msg))
}

// Success prints a success message
func Success(msg string) {
	fmt.Println(StyleIfTerminal(successStyle, "✓ "+msg))
}

// Warning prints a warning message
func Warning(msg string) {
	fmt.Println(StyleIfTerminal(warningStyle, "⚠ "+msg))
}

// KeyValue prints an aligned key-value line, falling back to plain text when piped.
func KeyValue(key, value string) {
	label := fmt.Sprintf("%-12s", key+":")
	if IsTerminal() {
		fmt.Printf("%s %s\n", keyStyle.Render(label), valueStyle.Render(value))
		return
	}
	fmt.Printf("%s %s\n", label, value)
}
