package ui

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"colorized/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const (
	initialLinesToShow = 500 // Show last 500 lines
)

// ShowLogWindow opens a window with the tail of colorized.log.
func ShowLogWindow(colorizedApp fyne.App) {
	logWindow := colorizedApp.NewWindow("Colorized Log")
	logWindow.Resize(fyne.NewSize(720, 480))

	configDir, err := config.Dir()
	if err != nil {
		dialog.ShowError(fmt.Errorf("cannot open log directory: %w", err), logWindow)
		logWindow.Show()
		return
	}
	logFilePath := config.LogFilePath(configDir)

	// Use a Label for better performance
	logLabel := widget.NewLabel("Loading log file...")
	logLabel.Wrapping = fyne.TextWrapWord

	searchEntry := widget.NewEntry()
	searchEntry.SetPlaceHolder("Search in loaded lines...")

	var displayedLines []string

	updateDisplay := func() {
		logLabel.SetText(strings.Join(displayedLines, "\n"))
	}

	performSearch := func() {
		query := searchEntry.Text
		if query == "" {
			updateDisplay()
			return
		}
		logLabel.SetText(FilterLines(displayedLines, query))
	}

	// Trigger search on Enter key
	searchEntry.OnSubmitted = func(string) {
		performSearch()
	}

	searchButton := widget.NewButton("Search", performSearch)

	clearButton := widget.NewButton("Clear Search", func() {
		searchEntry.SetText("")
		updateDisplay()
	})

	openDirButton := widget.NewButton("Open Log Directory", func() {
		openDirectory(configDir, logWindow)
	})

	infoLabel := widget.NewLabel("")

	searchBox := container.NewBorder(nil, nil, nil,
		container.NewHBox(searchButton, clearButton, openDirButton),
		searchEntry)

	content := container.NewBorder(
		container.NewVBox(searchBox, infoLabel),
		nil, nil, nil,
		container.NewScroll(logLabel),
	)
	logWindow.SetContent(content)
	logWindow.Show()

	// Load file asynchronously
	go func() {
		lines, total, err := readLastLines(logFilePath, initialLinesToShow)
		if err != nil {
			fyne.Do(func() {
				logLabel.SetText(fmt.Sprintf("Failed to read log file: %v", err))
			})
			return
		}

		fyne.Do(func() {
			displayedLines = lines
			infoLabel.SetText(fmt.Sprintf("Showing last %d of %d total lines.", len(lines), total))
			updateDisplay()
		})
	}()
}

// FilterLines returns the lines containing query (case-insensitive),
// followed by a match count, or a "no results" message.
func FilterLines(lines []string, query string) string {
	queryLower := strings.ToLower(query)

	var filtered []string
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), queryLower) {
			filtered = append(filtered, line)
		}
	}

	if len(filtered) == 0 {
		return fmt.Sprintf("No results found for: %s", query)
	}
	return strings.Join(filtered, "\n") + fmt.Sprintf("\n\n[Found %d matches]", len(filtered))
}

// readLastLines reads a file and returns at most n trailing lines plus
// the total line count.
func readLastLines(path string, n int) ([]string, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}

	total := len(lines)
	if total > n {
		lines = lines[total-n:]
	}
	return lines, total, nil
}

// openDirectory opens the file manager to the specified directory
func openDirectory(path string, parent fyne.Window) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("explorer", path)
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		dialog.ShowError(fmt.Errorf("unsupported operating system"), parent)
		return
	}

	err := cmd.Start()
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to open directory: %v", err), parent)
	}
}
