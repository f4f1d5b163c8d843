package report

import (
	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// PrintErrorMessage prints a standard Go error to the console.
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// PrintWarningMessage prints a warning message to the console.
func PrintWarningMessage(tag, msg string) {
	WarnStyleBG.Print(tag)
	WarnColorFG.Println(" " + msg)
}

// PrintInfoMessage prints an informational message to the user.
func PrintInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// -----------------------------------------------------------------------------

// displayICE displays an internal compiler error message.
func displayICE(message string) {
	ErrorStyleBG.Print("Internal Error")
	ErrorColorFG.Println(" " + message)
	pterm.Println("This error was not supposed to happen: please open an issue on GitHub")
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	ErrorStyleBG.Print("Fatal Error")
	ErrorColorFG.Println(" " + message)
}

// displayWarning displays a warning message.
func displayWarning(message string) {
	PrintWarningMessage("Warning", message)
}
