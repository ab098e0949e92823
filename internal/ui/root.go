package ui

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/pdf-viewer/internal/config"
	"github.com/ytget/pdf-viewer/internal/model"
	"github.com/ytget/pdf-viewer/internal/platform"
	"github.com/ytget/pdf-viewer/internal/render"
	"github.com/ytget/pdf-viewer/internal/viewer"
)

// Logo size in the toolbar
const RootLogoSize = 24

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	startup      config.Startup
	mobile       *MobileUI

	backend render.Backend
	viewer  *viewer.Viewer
	// locator is the document currently requested from the viewer
	locator string

	// UI components
	pageView      *PageView
	pageEntry     *PageEntry
	pageCount     *TextDisplay
	zoomLevel     *TextDisplay
	prevBtn       *ToolButton
	nextBtn       *ToolButton
	zoomInBtn     *ToolButton
	zoomOutBtn    *ToolButton
	fitWidthBtn   *ToolButton
	fitPageBtn    *ToolButton
	libraryBtn    *ToolButton
	loadingBanner *LoadingBanner
	errorBanner   *ErrorBanner
	library       *LibraryPanel
	body          *fyne.Container

	libraryVisible bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, startup config.Startup) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		startup:      startup,
		mobile:       NewMobileUI(app),
	}
	ui.libraryVisible = !ui.mobile.IsMobileDevice() || ui.mobile.IsLandscape()

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetOnClosed(ui.Close)
	window.SetOnDropped(ui.onDropped)

	lifecycle := app.Lifecycle()
	lifecycle.SetOnEnteredForeground(func() {
		if ui.viewer != nil {
			ui.viewer.HandleVisibilityChange(true)
		}
	})
	lifecycle.SetOnExitedForeground(func() {
		if ui.viewer != nil {
			ui.viewer.HandleVisibilityChange(false)
		}
	})

	c := window.Canvas()
	c.SetOnTypedKey(ui.onTypedKey)
	c.SetOnTypedRune(ui.onTypedRune)
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		ui.onShowOpenDialog()
	})

	ui.setupUI()
	log.Printf("RootUI initialized with %s renderer", ui.backend.Name())
	return ui
}

// Viewer returns the active viewer
func (ui *RootUI) Viewer() *viewer.Viewer {
	return ui.viewer
}

// Locator returns the document last requested
func (ui *RootUI) Locator() string {
	return ui.locator
}

// LibraryVisible reports whether the library panel is shown
func (ui *RootUI) LibraryVisible() bool {
	return ui.libraryVisible
}

// setupUI creates the widgets, binds a fresh viewer to them and sets the content
func (ui *RootUI) setupUI() {
	ui.backend = ui.newBackend()
	ui.createMenu()

	l := ui.localization
	ui.pageView = NewPageView()
	ui.pageEntry = NewPageEntry()
	ui.pageCount = NewTextDisplay()
	ui.zoomLevel = NewTextDisplay()
	ui.zoomLevel.Alignment = fyne.TextAlignCenter

	ui.prevBtn = NewToolButton(l.GetText(KeyPreviousPage), theme.NavigateBackIcon())
	ui.nextBtn = NewToolButton(l.GetText(KeyNextPage), theme.NavigateNextIcon())
	ui.zoomOutBtn = NewToolButton(l.GetText(KeyZoomOut), theme.ZoomOutIcon())
	ui.zoomInBtn = NewToolButton(l.GetText(KeyZoomIn), theme.ZoomInIcon())
	ui.fitWidthBtn = NewToolButton(l.GetText(KeyFitWidth), nil)
	ui.fitPageBtn = NewToolButton(l.GetText(KeyFitPage), theme.ZoomFitIcon())
	ui.libraryBtn = NewToolButton(IconLibrary, nil)
	ui.libraryBtn.Bind(ui.ToggleLibrary)
	ui.libraryBtn.SetActive(ui.libraryVisible)

	ui.loadingBanner = NewLoadingBanner()
	ui.errorBanner = NewErrorBanner(l.GetText(KeyRetry), l.GetText(KeyDismiss))

	ui.library = NewLibraryPanel(l)
	ui.library.SetCallbacks(func(entry *model.DocumentEntry) {
		ui.OpenDocument(entry.Path)
	}, ui.onRevealFile, ui.onOpenFile)

	cfg := ui.settings.ViewerConfig(l.GetCurrentLanguage())
	cfg.Strings = l.ViewerStrings()
	cfg.Elements = viewer.Elements{
		Container:  ui.pageView.ViewerContainer(),
		Surface:    ui.pageView,
		PageInput:  ui.pageEntry,
		PageCount:  ui.pageCount,
		ZoomLevel:  ui.zoomLevel,
		Prev:       ui.prevBtn,
		Next:       ui.nextBtn,
		ZoomIn:     ui.zoomInBtn,
		ZoomOut:    ui.zoomOutBtn,
		FitWidth:   ui.fitWidthBtn,
		FitPage:    ui.fitPageBtn,
		Retry:      ui.errorBanner.Retry,
		Dismiss:    ui.errorBanner.Dismiss,
		Loading:    ui.loadingBanner,
		Error:      ui.errorBanner,
		Fullscreen: ui.window,
	}
	cfg.Callbacks = viewer.Callbacks{
		OnDocumentLoad: ui.onDocumentLoad,
		OnError: func(err *viewer.Error) {
			log.Printf("viewer error: %v", err)
		},
	}
	ui.viewer = viewer.New(cfg, ui.backend, NewScheduler())

	ui.pageView.OnResized = ui.viewer.HandleResize
	ui.pageView.OnWheelZoom = func(deltaY float64) bool {
		return ui.viewer.HandleWheel(deltaY, true)
	}
	ui.pageView.OnSwipe = func(next bool) {
		if next {
			ui.viewer.NextPage()
		} else {
			ui.viewer.PrevPage()
		}
	}

	rtl := cfg.RightToLeft
	top := container.NewVBox(ui.createToolbar(rtl), ui.loadingBanner.Container(), ui.errorBanner.Container())
	ui.body = container.NewStack()
	ui.layoutBody(rtl)
	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.body))

	if err := ui.viewer.Initialize(); err != nil {
		log.Printf("Failed to initialize viewer: %v", err)
	}
	ui.library.SetDirectory(ui.libraryDirectory())
}

// createToolbar lays out the navigation and zoom controls, mirrored for RTL
func (ui *RootUI) createToolbar(rtl bool) fyne.CanvasObject {
	logo := canvas.NewImageFromResource(LogoResource)
	logo.SetMinSize(fyne.NewSize(RootLogoSize, RootLogoSize))
	logo.FillMode = canvas.ImageFillContain

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	pageLabel := widget.NewLabel(ui.localization.GetText(KeyPage))
	navigation := []fyne.CanvasObject{ui.prevBtn, pageLabel, ui.pageEntry, ui.pageCount, ui.nextBtn}
	zoom := []fyne.CanvasObject{ui.zoomOutBtn, ui.zoomLevel, ui.zoomInBtn, ui.fitWidthBtn, ui.fitPageBtn}
	leading := []fyne.CanvasObject{logo, ui.libraryBtn}

	if rtl {
		reverse(navigation)
		reverse(zoom)
		reverse(leading)
		return container.NewBorder(nil, nil,
			container.NewHBox(settingsBtn),
			container.NewHBox(leading...),
			container.NewCenter(container.NewHBox(append(zoom, navigation...)...)),
		)
	}
	return container.NewBorder(nil, nil,
		container.NewHBox(leading...),
		container.NewHBox(settingsBtn),
		container.NewCenter(container.NewHBox(append(navigation, zoom...)...)),
	)
}

func reverse(objects []fyne.CanvasObject) {
	for i, j := 0, len(objects)-1; i < j; i, j = i+1, j-1 {
		objects[i], objects[j] = objects[j], objects[i]
	}
}

// layoutBody places the library beside the page, on the right for RTL
func (ui *RootUI) layoutBody(rtl bool) {
	if !ui.libraryVisible {
		ui.body.Objects = []fyne.CanvasObject{ui.pageView}
		ui.body.Refresh()
		return
	}

	var split *container.Split
	if rtl {
		split = container.NewHSplit(ui.pageView, ui.library.Container())
		split.Offset = 1 - LibrarySplit
	} else {
		split = container.NewHSplit(ui.library.Container(), ui.pageView)
		split.Offset = LibrarySplit
	}
	ui.body.Objects = []fyne.CanvasObject{split}
	ui.body.Refresh()
}

// ToggleLibrary shows or hides the library panel
func (ui *RootUI) ToggleLibrary() {
	ui.libraryVisible = !ui.libraryVisible
	ui.libraryBtn.SetActive(ui.libraryVisible)
	ui.layoutBody(ui.viewer.Config().RightToLeft)
}

// createMenu creates the main menu
func (ui *RootUI) createMenu() {
	l := ui.localization

	openItem := fyne.NewMenuItem(l.GetText(KeyOpen), ui.onShowOpenDialog)
	openItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierShortcutDefault}

	recentItem := fyne.NewMenuItem(l.GetText(KeyOpenRecent), nil)
	recentItem.ChildMenu = ui.createRecentMenu()

	clearRecentItem := fyne.NewMenuItem(l.GetText(KeyClearRecent), func() {
		ui.settings.ClearRecentDocuments()
		ui.createMenu()
	})
	revealItem := fyne.NewMenuItem(l.GetText(KeyReveal), func() {
		ui.onRevealFile(ui.locator)
	})
	openExternalItem := fyne.NewMenuItem(l.GetText(KeyOpenExternal), func() {
		ui.onOpenFile(ui.locator)
	})
	settingsItem := fyne.NewMenuItem(l.GetText(KeySettings), ui.onShowSettings)

	fileMenu := fyne.NewMenu(l.GetText(KeyFile),
		openItem,
		recentItem,
		clearRecentItem,
		fyne.NewMenuItemSeparator(),
		revealItem,
		openExternalItem,
		fyne.NewMenuItemSeparator(),
		settingsItem,
	)

	viewMenu := fyne.NewMenu(l.GetText(KeyView),
		fyne.NewMenuItem(l.GetText(KeyFitWidth), func() { ui.viewer.FitWidth() }),
		fyne.NewMenuItem(l.GetText(KeyFitPage), func() { ui.viewer.FitPage() }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(l.GetText(KeyFullscreen), func() { ui.viewer.ToggleFullscreen() }),
		fyne.NewMenuItem(l.GetText(KeyToggleLibrary), ui.ToggleLibrary),
	)

	languageMenu := fyne.NewMenu(l.GetText(KeyLanguage))
	availableLanguages := l.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = l.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, languageMenu))
}

func (ui *RootUI) createRecentMenu() *fyne.Menu {
	menu := fyne.NewMenu(ui.localization.GetText(KeyOpenRecent))
	recent := ui.settings.GetRecentDocuments()
	if len(recent) == 0 {
		empty := fyne.NewMenuItem(ui.localization.GetText(KeyNoRecent), nil)
		empty.Disabled = true
		menu.Items = append(menu.Items, empty)
		return menu
	}
	for _, locator := range recent {
		target := locator
		menu.Items = append(menu.Items, fyne.NewMenuItem(model.TitleFromPath(target), func() {
			ui.OpenDocument(target)
		}))
	}
	return menu
}

// OpenDocument loads a file path or URL into the viewer. Missing local files
// are looked up by similar name in the same folder.
func (ui *RootUI) OpenDocument(locator string) {
	locator = strings.TrimSpace(locator)
	if locator == "" {
		return
	}
	if !isURL(locator) {
		resolved, err := platform.FindFileWithFallback(locator)
		if err != nil {
			log.Printf("Document %s not found locally: %v", locator, err)
		} else if resolved != locator {
			log.Printf("Document %s resolved to %s", locator, resolved)
			locator = resolved
		}
	}

	ui.locator = locator
	if err := ui.viewer.LoadDocument(locator); err != nil {
		log.Printf("Error loading document %s: %v", locator, err)
		ui.notify(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// onDocumentLoad records the document and updates the title
func (ui *RootUI) onDocumentLoad(pageCount int) {
	log.Printf("Document %s loaded with %d pages", ui.locator, pageCount)
	ui.settings.AddRecentDocument(ui.locator)
	ui.window.SetTitle(fmt.Sprintf(WindowTitleFormat, model.TitleFromPath(ui.locator), ui.localization.GetText(KeyAppTitle)))
	ui.createMenu()
}

// onShowOpenDialog shows a file picker limited to PDF files
func (ui *RootUI) onShowOpenDialog() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			log.Printf("Open dialog failed: %v", err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		if cerr := reader.Close(); cerr != nil {
			log.Printf("Failed to close %s: %v", path, cerr)
		}
		ui.OpenDocument(path)
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))

	if lister, err := storage.ListerForURI(storage.NewFileURI(ui.libraryDirectory())); err == nil {
		fd.SetLocation(lister)
	}
	fd.Show()
}

// onDropped opens the first dropped PDF
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	for _, uri := range uris {
		if strings.EqualFold(uri.Extension(), ".pdf") {
			ui.OpenDocument(uri.Path())
			return
		}
	}
}

func (ui *RootUI) onTypedKey(ev *fyne.KeyEvent) {
	ke, ok := KeyEventFromKey(ev, isTextInput(ui.window.Canvas().Focused()))
	if ok {
		ui.viewer.HandleKey(ke)
	}
}

func (ui *RootUI) onTypedRune(r rune) {
	ke, ok := KeyEventFromRune(r, isTextInput(ui.window.Canvas().Focused()))
	if ok {
		ui.viewer.HandleKey(ke)
	}
}

// onLanguageChange switches the interface language and rebuilds the viewer
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.rebuild()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	sd := NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.rebuild()
	})
	sd.Show()
}

// rebuild replaces the viewer and widgets, then reloads the open document
func (ui *RootUI) rebuild() {
	locator := ui.locator
	ui.library.Close()
	ui.viewer.Dispose()
	ui.releaseBackend()

	ui.setupUI()
	if locator != "" {
		ui.OpenDocument(locator)
	} else {
		ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	}
}

// Close releases the viewer when the window closes
func (ui *RootUI) Close() {
	if ui.library != nil {
		ui.library.Close()
	}
	if ui.viewer != nil {
		ui.viewer.Dispose()
	}
	ui.releaseBackend()
}

// releaseBackend drops the pages cached by the current renderer
func (ui *RootUI) releaseBackend() {
	cached, ok := ui.backend.(*render.CachedBackend)
	if !ok {
		return
	}
	log.Printf("Dropping %d cached pages", cached.Len())
	cached.Flush()
}

// newBackend builds the renderer named by the startup config or settings
func (ui *RootUI) newBackend() render.Backend {
	name := ui.startup.Render.Backend
	if name == "" {
		name = ui.settings.GetRenderBackend()
	}
	backend, err := render.NewBackend(name)
	if err != nil {
		log.Printf("Unknown renderer %q, using %s: %v", name, render.BackendAuto, err)
		backend, _ = render.NewBackend(render.BackendAuto)
	}
	if ui.startup.Render.CacheTTL > 0 {
		return render.NewCachedBackend(backend, ui.startup.Render.CacheTTL)
	}
	return backend
}

func (ui *RootUI) libraryDirectory() string {
	dir := ui.startup.Library.Dir
	if dir == "" {
		dir = ui.settings.GetLibraryDirectory()
	}
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		log.Printf("Failed to ensure library dir %s: %v", dir, err)
	}
	return dir
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if !ui.checkLocalFile(filePath) {
		return
	}
	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		ui.notify(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
		return
	}
	log.Printf("File revealed successfully: %s", filePath)
}

// onOpenFile opens a file with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	if !ui.checkLocalFile(filePath) {
		return
	}
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		log.Printf("Error opening file %s: %v", filePath, err)
		ui.notify(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
		return
	}
	log.Printf("File opened successfully: %s", filePath)
}

func (ui *RootUI) checkLocalFile(filePath string) bool {
	if filePath == "" {
		ui.notify(ui.localization.GetText(KeyNoDocumentOpen))
		return false
	}
	if isURL(filePath) {
		log.Printf("Cannot handle URL as file path: %s", filePath)
		ui.notify(ui.localization.GetText(KeyErrorOpeningFile) + ": " + filePath)
		return false
	}
	return true
}

func (ui *RootUI) notify(message string) {
	widget.ShowPopUp(widget.NewLabel(message), ui.window.Canvas())
}

func isURL(locator string) bool {
	return strings.Contains(locator, "://")
}
