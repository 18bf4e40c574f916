package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyRefresh         = "refresh"
	KeyLoading         = "loading"
	KeyAll             = "all"
	KeyCopied          = "copied"
	KeySettingsSaved   = "settings_saved"
	KeyAPIURL          = "api_url"
	KeyDefaultStyle    = "default_style"
	KeyStartPage       = "start_page"
	KeyRestartRequired = "restart_required"

	KeyPageExplorer = "page_explorer"
	KeyPageTrends   = "page_trends"
	KeyPageSEO      = "page_seo"
	KeyPageOrders   = "page_orders"
	KeyPageVault    = "page_vault"
	KeyPageCalendar = "page_calendar"

	KeyRunScraper    = "run_scraper"
	KeyScraping      = "scraping"
	KeyDismiss       = "dismiss"
	KeySearchTrends  = "search_trends"
	KeyMinScore      = "min_score"
	KeySource        = "source"
	KeySafeOnly      = "safe_only"
	KeyCompetition   = "competition"
	KeyMomentum      = "momentum"
	KeyUrgency       = "urgency"
	KeyMinInterest   = "min_interest"
	KeyHighValue     = "high_value"
	KeyAPICost       = "api_cost"
	KeyCacheHitRate  = "cache_hit_rate"
	KeyExplore       = "explore"
	KeyDeepAnalysis  = "deep_analysis"
	KeyNoTrends      = "no_trends"
	KeyScrapeStarted = "scrape_started"

	KeyEnterNiche    = "enter_niche"
	KeySearch        = "search"
	KeyAnalyze       = "analyze"
	KeyGapReport     = "gap_report"
	KeyBrief         = "brief"
	KeyListing       = "listing"
	KeyMockup        = "mockup"
	KeyVariations    = "variations"
	KeySaveToVault   = "save_to_vault"
	KeySavedToVault  = "saved_to_vault"
	KeyStyle         = "style"
	KeyListings      = "listings"
	KeyAvgPrice      = "avg_price"
	KeyOpportunity   = "opportunity"
	KeyCompetitors   = "competitors"
	KeyDesignIdeas   = "design_ideas"
	KeyDemand        = "demand"
	KeyNoSearchYet   = "no_search_yet"
	KeyListingAttach = "listing_attached"

	KeySmartModel   = "smart_model"
	KeyGenerateSEO  = "generate_seo"
	KeyPush         = "push"
	KeyPushed       = "pushed"
	KeyBulkSEO      = "bulk_seo"
	KeyBulkConfirm  = "bulk_confirm"
	KeyBulkProgress = "bulk_progress"
	KeyBulkDone     = "bulk_done"
	KeySEOScore     = "seo_score"
	KeyNoProducts   = "no_products"

	KeySyncOrders   = "sync_orders"
	KeySyncing      = "syncing"
	KeyOrdersSynced = "orders_synced"
	KeyRevenue      = "revenue"
	KeyProfit       = "profit"
	KeyOrderCount   = "order_count"
	KeyAvgMargin    = "avg_margin"
	KeyByPlatform   = "by_platform"
	KeyTopProducts  = "top_products"
	KeyNoOrders     = "no_orders"

	KeyFilterNiche   = "filter_niche"
	KeyStatus        = "status"
	KeyDelete        = "delete"
	KeyDesignRemoved = "design_removed"
	KeyCopyListing   = "copy_listing"
	KeyNoDesigns     = "no_designs"
	KeyTotalDesigns  = "total_designs"

	KeyCategory     = "category"
	KeySearchEvents = "search_events"
	KeyCopyNiches   = "copy_niches"
	KeyNichesCopied = "niches_copied"
	KeyStartNow     = "start_now"
	KeyNoEvents     = "no_events"
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
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Novraux Desk",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyRefresh:         "Refresh",
		KeyLoading:         "Loading...",
		KeyAll:             "All",
		KeyCopied:          "Copied to clipboard",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyAPIURL:          "Backend URL",
		KeyDefaultStyle:    "Default Design Style",
		KeyStartPage:       "Start Page",
		KeyRestartRequired: "Backend URL changes apply after restart.",

		KeyPageExplorer: "Niche Explorer",
		KeyPageTrends:   "Viral Trends",
		KeyPageSEO:      "Shopify SEO",
		KeyPageOrders:   "Orders",
		KeyPageVault:    "Design Vault",
		KeyPageCalendar: "Seasonal Calendar",

		KeyRunScraper:    "Run Scraper",
		KeyScraping:      "Scraping...",
		KeyDismiss:       "Dismiss",
		KeySearchTrends:  "Search keywords...",
		KeyMinScore:      "Min score",
		KeySource:        "Source",
		KeySafeOnly:      "IP-safe only",
		KeyCompetition:   "Competition",
		KeyMomentum:      "Momentum",
		KeyUrgency:       "Urgency",
		KeyMinInterest:   "Min interest",
		KeyHighValue:     "High value",
		KeyAPICost:       "API cost",
		KeyCacheHitRate:  "Cache hits",
		KeyExplore:       "Explore",
		KeyDeepAnalysis:  "Deep analysis",
		KeyNoTrends:      "No trends yet. Run the scraper to discover some.",
		KeyScrapeStarted: "Scraper started",

		KeyEnterNiche:    "Enter a niche keyword (e.g. retro camping)",
		KeySearch:        "Search",
		KeyAnalyze:       "Generate Design Ideas",
		KeyGapReport:     "Gap Report",
		KeyBrief:         "Brief",
		KeyListing:       "Listing",
		KeyMockup:        "Mockup",
		KeyVariations:    "Variations",
		KeySaveToVault:   "Save to Vault",
		KeySavedToVault:  "Saved to Vault",
		KeyStyle:         "Style",
		KeyListings:      "Listings",
		KeyAvgPrice:      "Avg price",
		KeyOpportunity:   "Opportunity",
		KeyCompetitors:   "Top competitors",
		KeyDesignIdeas:   "Design ideas",
		KeyDemand:        "Demand",
		KeyNoSearchYet:   "Search a niche to validate it across marketplaces.",
		KeyListingAttach: "Listing copy attached to the saved design",

		KeySmartModel:   "Smart model",
		KeyGenerateSEO:  "Generate SEO",
		KeyPush:         "Push to Shopify",
		KeyPushed:       "Pushed",
		KeyBulkSEO:      "Bulk SEO (all)",
		KeyBulkConfirm:  "Start AI SEO generation for ALL listed products?",
		KeyBulkProgress: "Bulk SEO: %d/%d done",
		KeyBulkDone:     "Bulk SEO finished",
		KeySEOScore:     "SEO score",
		KeyNoProducts:   "No products found in the store.",

		KeySyncOrders:   "Sync Orders",
		KeySyncing:      "Syncing...",
		KeyOrdersSynced: "Orders synced",
		KeyRevenue:      "Revenue",
		KeyProfit:       "Profit",
		KeyOrderCount:   "Orders",
		KeyAvgMargin:    "Avg margin",
		KeyByPlatform:   "By platform",
		KeyTopProducts:  "Top products",
		KeyNoOrders:     "No orders yet. Sync to pull the latest sales.",

		KeyFilterNiche:   "Filter by niche...",
		KeyStatus:        "Status",
		KeyDelete:        "Delete",
		KeyDesignRemoved: "Design removed from vault",
		KeyCopyListing:   "Copy listing",
		KeyNoDesigns:     "The vault is empty. Save designs from the Niche Explorer.",
		KeyTotalDesigns:  "Total designs",

		KeyCategory:     "Category",
		KeySearchEvents: "Search events or niches...",
		KeyCopyNiches:   "Copy niches",
		KeyNichesCopied: "%d niches copied!",
		KeyStartNow:     "Start designing now",
		KeyNoEvents:     "No events match the filter.",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Novraux Desk",
		KeySettings:        "Настройки",
		KeyFile:            "Файл",
		KeyLanguage:        "Язык",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeyRefresh:         "Обновить",
		KeyLoading:         "Загрузка...",
		KeyAll:             "Все",
		KeyCopied:          "Скопировано в буфер обмена",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeyAPIURL:          "Адрес сервера",
		KeyDefaultStyle:    "Стиль дизайна по умолчанию",
		KeyStartPage:       "Стартовая страница",
		KeyRestartRequired: "Новый адрес сервера применится после перезапуска.",

		KeyPageExplorer: "Поиск ниш",
		KeyPageTrends:   "Вирусные тренды",
		KeyPageSEO:      "Shopify SEO",
		KeyPageOrders:   "Заказы",
		KeyPageVault:    "Хранилище дизайнов",
		KeyPageCalendar: "Сезонный календарь",

		KeyRunScraper:    "Запустить сбор",
		KeyScraping:      "Сбор данных...",
		KeyDismiss:       "Скрыть",
		KeySearchTrends:  "Поиск по ключевым словам...",
		KeyMinScore:      "Мин. оценка",
		KeySource:        "Источник",
		KeySafeOnly:      "Только без IP-рисков",
		KeyCompetition:   "Конкуренция",
		KeyMomentum:      "Динамика",
		KeyUrgency:       "Срочность",
		KeyMinInterest:   "Мин. интерес",
		KeyHighValue:     "Ценные",
		KeyAPICost:       "Расходы API",
		KeyCacheHitRate:  "Попадания в кэш",
		KeyExplore:       "Исследовать",
		KeyDeepAnalysis:  "Глубокий анализ",
		KeyNoTrends:      "Трендов пока нет. Запустите сбор.",
		KeyScrapeStarted: "Сбор запущен",

		KeyEnterNiche:    "Введите нишу (например, retro camping)",
		KeySearch:        "Найти",
		KeyAnalyze:       "Идеи дизайнов",
		KeyGapReport:     "Анализ пробелов",
		KeyBrief:         "Бриф",
		KeyListing:       "Листинг",
		KeyMockup:        "Мокап",
		KeyVariations:    "Вариации",
		KeySaveToVault:   "В хранилище",
		KeySavedToVault:  "Сохранено в хранилище",
		KeyStyle:         "Стиль",
		KeyListings:      "Листинги",
		KeyAvgPrice:      "Средняя цена",
		KeyOpportunity:   "Потенциал",
		KeyCompetitors:   "Главные конкуренты",
		KeyDesignIdeas:   "Идеи дизайнов",
		KeyDemand:        "Спрос",
		KeyNoSearchYet:   "Введите нишу, чтобы проверить её на маркетплейсах.",
		KeyListingAttach: "Листинг прикреплён к сохранённому дизайну",

		KeySmartModel:   "Умная модель",
		KeyGenerateSEO:  "Создать SEO",
		KeyPush:         "Отправить в Shopify",
		KeyPushed:       "Отправлено",
		KeyBulkSEO:      "SEO для всех",
		KeyBulkConfirm:  "Запустить AI SEO для ВСЕХ товаров в списке?",
		KeyBulkProgress: "Массовое SEO: %d/%d готово",
		KeyBulkDone:     "Массовое SEO завершено",
		KeySEOScore:     "Оценка SEO",
		KeyNoProducts:   "В магазине нет товаров.",

		KeySyncOrders:   "Синхронизировать",
		KeySyncing:      "Синхронизация...",
		KeyOrdersSynced: "Заказы синхронизированы",
		KeyRevenue:      "Выручка",
		KeyProfit:       "Прибыль",
		KeyOrderCount:   "Заказы",
		KeyAvgMargin:    "Средняя маржа",
		KeyByPlatform:   "По площадкам",
		KeyTopProducts:  "Лучшие товары",
		KeyNoOrders:     "Заказов пока нет. Синхронизируйте продажи.",

		KeyFilterNiche:   "Фильтр по нише...",
		KeyStatus:        "Статус",
		KeyDelete:        "Удалить",
		KeyDesignRemoved: "Дизайн удалён из хранилища",
		KeyCopyListing:   "Копировать листинг",
		KeyNoDesigns:     "Хранилище пусто. Сохраняйте дизайны из поиска ниш.",
		KeyTotalDesigns:  "Всего дизайнов",

		KeyCategory:     "Категория",
		KeySearchEvents: "Поиск событий или ниш...",
		KeyCopyNiches:   "Копировать ниши",
		KeyNichesCopied: "Скопировано ниш: %d",
		KeyStartNow:     "Пора начинать дизайн",
		KeyNoEvents:     "Нет событий по фильтру.",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Novraux Desk",
		KeySettings:        "Configurações",
		KeyFile:            "Arquivo",
		KeyLanguage:        "Idioma",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeyRefresh:         "Atualizar",
		KeyLoading:         "Carregando...",
		KeyAll:             "Todos",
		KeyCopied:          "Copiado para a área de transferência",
		KeySettingsSaved:   "Configurações salvas com sucesso!",
		KeyAPIURL:          "URL do servidor",
		KeyDefaultStyle:    "Estilo de design padrão",
		KeyStartPage:       "Página inicial",
		KeyRestartRequired: "A nova URL do servidor vale após reiniciar.",

		KeyPageExplorer: "Explorador de Nichos",
		KeyPageTrends:   "Tendências Virais",
		KeyPageSEO:      "Shopify SEO",
		KeyPageOrders:   "Pedidos",
		KeyPageVault:    "Cofre de Designs",
		KeyPageCalendar: "Calendário Sazonal",

		KeyRunScraper:    "Executar coleta",
		KeyScraping:      "Coletando...",
		KeyDismiss:       "Dispensar",
		KeySearchTrends:  "Buscar palavras-chave...",
		KeyMinScore:      "Nota mínima",
		KeySource:        "Fonte",
		KeySafeOnly:      "Somente sem risco de PI",
		KeyCompetition:   "Concorrência",
		KeyMomentum:      "Tendência",
		KeyUrgency:       "Urgência",
		KeyMinInterest:   "Interesse mínimo",
		KeyHighValue:     "Alto valor",
		KeyAPICost:       "Custo de API",
		KeyCacheHitRate:  "Acertos de cache",
		KeyExplore:       "Explorar",
		KeyDeepAnalysis:  "Análise profunda",
		KeyNoTrends:      "Nenhuma tendência ainda. Execute a coleta.",
		KeyScrapeStarted: "Coleta iniciada",

		KeyEnterNiche:    "Digite um nicho (ex.: retro camping)",
		KeySearch:        "Buscar",
		KeyAnalyze:       "Gerar ideias de design",
		KeyGapReport:     "Relatório de lacunas",
		KeyBrief:         "Briefing",
		KeyListing:       "Anúncio",
		KeyMockup:        "Mockup",
		KeyVariations:    "Variações",
		KeySaveToVault:   "Salvar no Cofre",
		KeySavedToVault:  "Salvo no Cofre",
		KeyStyle:         "Estilo",
		KeyListings:      "Anúncios",
		KeyAvgPrice:      "Preço médio",
		KeyOpportunity:   "Oportunidade",
		KeyCompetitors:   "Principais concorrentes",
		KeyDesignIdeas:   "Ideias de design",
		KeyDemand:        "Demanda",
		KeyNoSearchYet:   "Busque um nicho para validá-lo nos marketplaces.",
		KeyListingAttach: "Anúncio anexado ao design salvo",

		KeySmartModel:   "Modelo inteligente",
		KeyGenerateSEO:  "Gerar SEO",
		KeyPush:         "Enviar ao Shopify",
		KeyPushed:       "Enviado",
		KeyBulkSEO:      "SEO em massa",
		KeyBulkConfirm:  "Iniciar geração de SEO com IA para TODOS os produtos listados?",
		KeyBulkProgress: "SEO em massa: %d/%d prontos",
		KeyBulkDone:     "SEO em massa concluído",
		KeySEOScore:     "Nota SEO",
		KeyNoProducts:   "Nenhum produto na loja.",

		KeySyncOrders:   "Sincronizar pedidos",
		KeySyncing:      "Sincronizando...",
		KeyOrdersSynced: "Pedidos sincronizados",
		KeyRevenue:      "Receita",
		KeyProfit:       "Lucro",
		KeyOrderCount:   "Pedidos",
		KeyAvgMargin:    "Margem média",
		KeyByPlatform:   "Por plataforma",
		KeyTopProducts:  "Produtos principais",
		KeyNoOrders:     "Nenhum pedido ainda. Sincronize as vendas.",

		KeyFilterNiche:   "Filtrar por nicho...",
		KeyStatus:        "Status",
		KeyDelete:        "Excluir",
		KeyDesignRemoved: "Design removido do cofre",
		KeyCopyListing:   "Copiar anúncio",
		KeyNoDesigns:     "O cofre está vazio. Salve designs pelo Explorador de Nichos.",
		KeyTotalDesigns:  "Total de designs",

		KeyCategory:     "Categoria",
		KeySearchEvents: "Buscar eventos ou nichos...",
		KeyCopyNiches:   "Copiar nichos",
		KeyNichesCopied: "%d nichos copiados!",
		KeyStartNow:     "Comece a criar agora",
		KeyNoEvents:     "Nenhum evento corresponde ao filtro.",
	}
}
