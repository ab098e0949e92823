package ui

import "github.com/ytget/pdf-viewer/internal/viewer"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyFile             = "file"
	KeyView             = "view"
	KeyLanguage         = "language"
	KeyOpen             = "open"
	KeyOpenRecent       = "open_recent"
	KeyClearRecent      = "clear_recent"
	KeyNoRecent         = "no_recent"
	KeyReveal           = "reveal"
	KeyOpenExternal     = "open_external"
	KeySettings         = "settings"
	KeyFullscreen       = "fullscreen"
	KeyToggleLibrary    = "toggle_library"
	KeyLibrary          = "library"
	KeyLibraryDir       = "library_directory"
	KeyRescan           = "rescan"
	KeySearch           = "search"
	KeyQueryTooShort    = "query_too_short"
	KeyNoDocuments      = "no_documents"
	KeyDefaultZoom      = "default_zoom"
	KeyMinZoom          = "min_zoom"
	KeyMaxZoom          = "max_zoom"
	KeyZoomStep         = "zoom_step"
	KeyRenderer         = "renderer"
	KeyRightToLeft      = "right_to_left"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyBrowse           = "browse"
	KeySettingsSaved    = "settings_saved"
	KeyErrorOpeningFile = "error_opening_file"
	KeyNoDocumentOpen   = "no_document_open"
	KeyDismiss          = "dismiss"

	// Viewer texts
	KeyLoading      = "loading"
	KeyError        = "error"
	KeyRetry        = "retry"
	KeyPage         = "page"
	KeyOf           = "of"
	KeyZoomIn       = "zoom_in"
	KeyZoomOut      = "zoom_out"
	KeyFitWidth     = "fit_width"
	KeyFitPage      = "fit_page"
	KeyPreviousPage = "previous_page"
	KeyNextPage     = "next_page"
	KeyRenderError  = "render_error"
	KeyInitError    = "init_error"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ar": "العربية",
		"ru": "Русский",
		"pt": "Português",
	}
}

// ViewerStrings returns the viewer texts in the current language
func (l *Localization) ViewerStrings() viewer.Strings {
	return viewer.Strings{
		Loading:      l.GetText(KeyLoading),
		Error:        l.GetText(KeyError),
		Retry:        l.GetText(KeyRetry),
		Page:         l.GetText(KeyPage),
		Of:           l.GetText(KeyOf),
		ZoomIn:       l.GetText(KeyZoomIn),
		ZoomOut:      l.GetText(KeyZoomOut),
		FitWidth:     l.GetText(KeyFitWidth),
		FitPage:      l.GetText(KeyFitPage),
		PreviousPage: l.GetText(KeyPreviousPage),
		NextPage:     l.GetText(KeyNextPage),
		RenderError:  l.GetText(KeyRenderError),
		InitError:    l.GetText(KeyInitError),
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "PDF Viewer",
		KeyFile:             "File",
		KeyView:             "View",
		KeyLanguage:         "Language",
		KeyOpen:             "Open...",
		KeyOpenRecent:       "Open Recent",
		KeyClearRecent:      "Clear Recent",
		KeyNoRecent:         "No recent documents",
		KeyReveal:           "Reveal in File Manager",
		KeyOpenExternal:     "Open in System Viewer",
		KeySettings:         "Settings",
		KeyFullscreen:       "Fullscreen",
		KeyToggleLibrary:    "Show/Hide Library",
		KeyLibrary:          "Library",
		KeyLibraryDir:       "Library Directory",
		KeyRescan:           "Rescan",
		KeySearch:           "Search documents...",
		KeyQueryTooShort:    "Type at least 2 characters",
		KeyNoDocuments:      "No documents found",
		KeyDefaultZoom:      "Default Zoom",
		KeyMinZoom:          "Minimum Zoom",
		KeyMaxZoom:          "Maximum Zoom",
		KeyZoomStep:         "Zoom Step",
		KeyRenderer:         "Renderer",
		KeyRightToLeft:      "Always right to left",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyBrowse:           "Browse",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyErrorOpeningFile: "Error opening file",
		KeyNoDocumentOpen:   "No document is open",
		KeyDismiss:          "Dismiss",

		KeyLoading:      "Loading...",
		KeyError:        "An error occurred",
		KeyRetry:        "Retry",
		KeyPage:         "Page",
		KeyOf:           "of",
		KeyZoomIn:       "Zoom in",
		KeyZoomOut:      "Zoom out",
		KeyFitWidth:     "Fit width",
		KeyFitPage:      "Fit page",
		KeyPreviousPage: "Previous page",
		KeyNextPage:     "Next page",
		KeyRenderError:  "Error rendering PDF page",
		KeyInitError:    "Viewer surface is missing",
	}

	// Arabic texts
	l.texts["ar"] = map[string]string{
		KeyAppTitle:         "عارض PDF",
		KeyFile:             "ملف",
		KeyView:             "عرض",
		KeyLanguage:         "اللغة",
		KeyOpen:             "فتح...",
		KeyOpenRecent:       "فتح الأخيرة",
		KeyClearRecent:      "مسح القائمة",
		KeyNoRecent:         "لا توجد مستندات حديثة",
		KeyReveal:           "إظهار في مدير الملفات",
		KeyOpenExternal:     "فتح في عارض النظام",
		KeySettings:         "الإعدادات",
		KeyFullscreen:       "ملء الشاشة",
		KeyToggleLibrary:    "إظهار/إخفاء المكتبة",
		KeyLibrary:          "المكتبة",
		KeyLibraryDir:       "مجلد المكتبة",
		KeyRescan:           "إعادة الفحص",
		KeySearch:           "البحث في المستندات...",
		KeyQueryTooShort:    "اكتب حرفين على الأقل",
		KeyNoDocuments:      "لم يتم العثور على مستندات",
		KeyDefaultZoom:      "التكبير الافتراضي",
		KeyMinZoom:          "أدنى تكبير",
		KeyMaxZoom:          "أقصى تكبير",
		KeyZoomStep:         "خطوة التكبير",
		KeyRenderer:         "محرك العرض",
		KeyRightToLeft:      "من اليمين إلى اليسار دائماً",
		KeySave:             "حفظ",
		KeyCancel:           "إلغاء",
		KeyBrowse:           "استعراض",
		KeySettingsSaved:    "تم حفظ الإعدادات بنجاح!",
		KeyErrorOpeningFile: "خطأ في فتح الملف",
		KeyNoDocumentOpen:   "لا يوجد مستند مفتوح",
		KeyDismiss:          "إغلاق",

		KeyLoading:      "جاري التحميل...",
		KeyError:        "حدث خطأ",
		KeyRetry:        "إعادة المحاولة",
		KeyPage:         "صفحة",
		KeyOf:           "من",
		KeyZoomIn:       "تكبير",
		KeyZoomOut:      "تصغير",
		KeyFitWidth:     "تناسب العرض",
		KeyFitPage:      "تناسب الصفحة",
		KeyPreviousPage: "الصفحة السابقة",
		KeyNextPage:     "الصفحة التالية",
		KeyRenderError:  "خطأ في عرض صفحة PDF",
		KeyInitError:    "سطح العرض غير موجود",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Просмотр PDF",
		KeyFile:             "Файл",
		KeyView:             "Вид",
		KeyLanguage:         "Язык",
		KeyOpen:             "Открыть...",
		KeyOpenRecent:       "Недавние",
		KeyClearRecent:      "Очистить список",
		KeyNoRecent:         "Нет недавних документов",
		KeyReveal:           "Показать в файловом менеджере",
		KeyOpenExternal:     "Открыть в системном просмотрщике",
		KeySettings:         "Настройки",
		KeyFullscreen:       "Полный экран",
		KeyToggleLibrary:    "Показать/скрыть библиотеку",
		KeyLibrary:          "Библиотека",
		KeyLibraryDir:       "Папка библиотеки",
		KeyRescan:           "Обновить",
		KeySearch:           "Поиск документов...",
		KeyQueryTooShort:    "Введите минимум 2 символа",
		KeyNoDocuments:      "Документы не найдены",
		KeyDefaultZoom:      "Масштаб по умолчанию",
		KeyMinZoom:          "Минимальный масштаб",
		KeyMaxZoom:          "Максимальный масштаб",
		KeyZoomStep:         "Шаг масштаба",
		KeyRenderer:         "Движок отрисовки",
		KeyRightToLeft:      "Всегда справа налево",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyBrowse:           "Обзор",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyErrorOpeningFile: "Ошибка открытия файла",
		KeyNoDocumentOpen:   "Документ не открыт",
		KeyDismiss:          "Закрыть",

		KeyLoading:      "Загрузка...",
		KeyError:        "Произошла ошибка",
		KeyRetry:        "Повторить",
		KeyPage:         "Страница",
		KeyOf:           "из",
		KeyZoomIn:       "Увеличить",
		KeyZoomOut:      "Уменьшить",
		KeyFitWidth:     "По ширине",
		KeyFitPage:      "Страница целиком",
		KeyPreviousPage: "Предыдущая страница",
		KeyNextPage:     "Следующая страница",
		KeyRenderError:  "Ошибка отрисовки страницы PDF",
		KeyInitError:    "Отсутствует поверхность просмотра",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Visualizador de PDF",
		KeyFile:             "Arquivo",
		KeyView:             "Exibir",
		KeyLanguage:         "Idioma",
		KeyOpen:             "Abrir...",
		KeyOpenRecent:       "Abrir Recentes",
		KeyClearRecent:      "Limpar Recentes",
		KeyNoRecent:         "Nenhum documento recente",
		KeyReveal:           "Mostrar no Gerenciador de Arquivos",
		KeyOpenExternal:     "Abrir no Visualizador do Sistema",
		KeySettings:         "Configurações",
		KeyFullscreen:       "Tela Cheia",
		KeyToggleLibrary:    "Mostrar/Ocultar Biblioteca",
		KeyLibrary:          "Biblioteca",
		KeyLibraryDir:       "Diretório da Biblioteca",
		KeyRescan:           "Atualizar",
		KeySearch:           "Buscar documentos...",
		KeyQueryTooShort:    "Digite pelo menos 2 caracteres",
		KeyNoDocuments:      "Nenhum documento encontrado",
		KeyDefaultZoom:      "Zoom Padrão",
		KeyMinZoom:          "Zoom Mínimo",
		KeyMaxZoom:          "Zoom Máximo",
		KeyZoomStep:         "Passo do Zoom",
		KeyRenderer:         "Renderizador",
		KeyRightToLeft:      "Sempre da direita para a esquerda",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyBrowse:           "Navegar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyErrorOpeningFile: "Erro ao abrir arquivo",
		KeyNoDocumentOpen:   "Nenhum documento aberto",
		KeyDismiss:          "Fechar",

		KeyLoading:      "Carregando...",
		KeyError:        "Ocorreu um erro",
		KeyRetry:        "Tentar novamente",
		KeyPage:         "Página",
		KeyOf:           "de",
		KeyZoomIn:       "Aumentar zoom",
		KeyZoomOut:      "Diminuir zoom",
		KeyFitWidth:     "Ajustar largura",
		KeyFitPage:      "Ajustar página",
		KeyPreviousPage: "Página anterior",
		KeyNextPage:     "Próxima página",
		KeyRenderError:  "Erro ao renderizar página PDF",
		KeyInitError:    "Superfície do visualizador ausente",
	}
}
