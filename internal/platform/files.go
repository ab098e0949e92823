package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
	AndroidCommand  = "am"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

// PDFMimeType is passed to Android intents
const PDFMimeType = "application/pdf"

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// Fallback matching thresholds
const (
	// MaxNameDistanceRatio is the largest edit distance, relative to the longer
	// name, at which two file names are treated as the same document
	MaxNameDistanceRatio = 0.3
)

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	// Try to find the file with fallback to similar names
	foundPath, err := FindFileWithFallback(filePath)
	if err != nil {
		return fmt.Errorf("file does not exist: %v", err)
	}

	absPath, err := filepath.Abs(foundPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return openFileInFinderMacOS(absPath)
	case OSWindows:
		return openFileInExplorerWindows(absPath)
	case OSLinux:
		return openFileInManagerLinux(absPath)
	case OSAndroid:
		return openFileInManagerAndroid(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileInFinderMacOS opens file in Finder on macOS with selection
func openFileInFinderMacOS(filePath string) error {
	cmd := exec.Command(OpenCommand, MacOSSelectFlag, filePath)
	return cmd.Run()
}

// openFileInExplorerWindows opens file in Explorer on Windows with selection
func openFileInExplorerWindows(filePath string) error {
	cmd := exec.Command(ExplorerCommand, WindowsSelectParam, filePath)
	return cmd.Run()
}

// openFileInManagerLinux opens directory containing file on Linux
// Note: File selection is not standardized on Linux, so we open the parent directory
func openFileInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	cmd := exec.Command(XDGOpenCommand, dir)
	if err := cmd.Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			cmd := exec.Command(fm, dir)
			return cmd.Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// openFileInManagerAndroid opens the directory containing the file on Android
func openFileInManagerAndroid(filePath string) error {
	dir := filepath.Dir(filePath)
	attempts := [][]string{
		{"start", "-a", "android.intent.action.VIEW", "-d", "file://" + dir},
		{"start", "-a", "android.intent.action.VIEW", "-d", "content://com.android.externalstorage.documents/root/primary/Documents"},
		{"start", "-a", "android.settings.INTERNAL_STORAGE_SETTINGS"},
	}
	if err := runFirst(AndroidCommand, attempts); err != nil {
		return fmt.Errorf("failed to open file in manager: %w", err)
	}
	return nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	foundPath, err := FindFileWithFallback(filePath)
	if err != nil {
		return fmt.Errorf("file does not exist: %v", err)
	}

	absPath, err := filepath.Abs(foundPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath).Run()
	case OSLinux:
		return exec.Command(XDGOpenCommand, absPath).Run()
	case OSAndroid:
		return openFileWithDefaultAppAndroid(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileWithDefaultAppAndroid asks Android for a PDF capable activity
func openFileWithDefaultAppAndroid(filePath string) error {
	attempts := [][]string{
		{"start", "-a", "android.intent.action.VIEW", "-d", "file://" + filePath, "-t", PDFMimeType},
		{"start", "-a", "android.intent.action.VIEW", "-d", "content://media/external/file" + filePath, "-t", PDFMimeType},
		{"start", "-a", "android.intent.action.VIEW", "-d", "file://" + filePath},
	}
	if err := runFirst(AndroidCommand, attempts); err != nil {
		return fmt.Errorf("failed to open file with any method: %w", err)
	}
	return nil
}

// runFirst runs name with each argument list until one succeeds
func runFirst(name string, attempts [][]string) error {
	var err error
	for _, args := range attempts {
		if err = exec.Command(name, args...).Run(); err == nil {
			return nil
		}
	}
	if err == nil {
		err = fmt.Errorf("no attempts")
	}
	return err
}

// IsAndroid reports whether the process runs inside an Android app
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		os.Getenv("ANDROID_STORAGE") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so" // Fyne Android apps run as libdist.so
}

// GetHomeDocumentsDir returns the standard Documents directory for the user
func GetHomeDocumentsDir() (string, error) {
	if IsAndroid() {
		return "/sdcard/Documents", nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, "Documents"), nil
}

// FindFileWithFallback tries to find a file by its original path, and if not found,
// searches the same directory for a file with the same extension and a close name.
// Recent documents are remembered by path, so renamed copies are still found.
func FindFileWithFallback(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("file path is empty")
	}

	if strings.Contains(filePath, "://") {
		return "", fmt.Errorf("file path appears to be a URL: %s", filePath)
	}

	if !strings.Contains(filePath, "/") && !strings.Contains(filePath, "\\") {
		return "", fmt.Errorf("file path does not contain path separators: %s", filePath)
	}

	if _, err := os.Stat(filePath); err == nil {
		return filePath, nil
	}

	dir := filepath.Dir(filePath)
	originalName := filepath.Base(filePath)
	originalExt := filepath.Ext(originalName)
	baseName := strings.TrimSuffix(originalName, originalExt)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	type candidate struct {
		path     string
		distance float64
	}
	var candidates []candidate

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		entryName := entry.Name()
		entryExt := filepath.Ext(entryName)
		if !strings.EqualFold(entryExt, originalExt) {
			continue
		}
		entryBase := strings.TrimSuffix(entryName, entryExt)
		if ratio, ok := nameDistance(entryBase, baseName); ok {
			candidates = append(candidates, candidate{path: filepath.Join(dir, entryName), distance: ratio})
		}
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("file not found: %s", filePath)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].path < candidates[j].path
	})
	return candidates[0].path, nil
}

// nameDistance returns the case-insensitive edit distance between two names
// relative to the longer one, and whether the names are close enough.
func nameDistance(name1, name2 string) (float64, bool) {
	clean1 := strings.ToLower(strings.TrimSpace(name1))
	clean2 := strings.ToLower(strings.TrimSpace(name2))
	if clean1 == "" || clean2 == "" {
		return 0, false
	}
	if clean1 == clean2 {
		return 0, true
	}

	longest := len([]rune(clean1))
	if n := len([]rune(clean2)); n > longest {
		longest = n
	}
	ratio := float64(levenshtein.ComputeDistance(clean1, clean2)) / float64(longest)
	return ratio, ratio <= MaxNameDistanceRatio
}
