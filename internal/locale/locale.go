// Package locale holds the static localization data for the dashboard:
// the UI string tables per language and the country to currency/language
// mapping applied when the profile's country changes. Lookup tables only,
// no i18n engine.
package locale

// Supported language tags.
const (
	LangEN = "en"
	LangHI = "hi"
	LangES = "es"
	LangFR = "fr"
)

// Regional defaults derived from the selected country.
type Regional struct {
	Currency string `json:"currency"`
	Language string `json:"language"`
}

var countryDefaults = map[string]Regional{
	"United States":  {Currency: "USD", Language: LangEN},
	"India":          {Currency: "INR", Language: LangHI},
	"United Kingdom": {Currency: "GBP", Language: LangEN},
	"Spain":          {Currency: "EUR", Language: LangES},
	"France":         {Currency: "EUR", Language: LangFR},
}

// ForCountry returns the regional defaults for a country. Unknown
// countries fall back to the USD/en baseline, so the mapping is total.
func ForCountry(country string) Regional {
	if r, ok := countryDefaults[country]; ok {
		return r
	}
	return Regional{Currency: "USD", Language: LangEN}
}

// Strings returns the UI string table for a language, falling back to
// English for unknown tags.
func Strings(lang string) map[string]string {
	if t, ok := tables[lang]; ok {
		return t
	}
	return tables[LangEN]
}

// Supported reports whether the language tag has a dedicated table.
func Supported(lang string) bool {
	_, ok := tables[lang]
	return ok
}

var tables = map[string]map[string]string{
	LangEN: {
		"welcome":          "SMART BUDGET MANAGEMENT APP (SBM)",
		"greeting":         "Welcome back, ",
		"balance":          "Liquid Capital",
		"savings":          "Sacred Reserves",
		"earn":             "Inflow Expansion",
		"travel":           "Scout: Tickets",
		"groceries":        "Scout: Market",
		"advisor":          "AI Concierge",
		"settings":         "System Hub",
		"health":           "Vital Reserves",
		"addTransaction":   "Log Capital Event",
		"transfer":         "Wire Assets",
		"interests":        "Earning Nodes",
		"recoveryStrategy": "System Restoration Plan",
		"ticketTitle":      "Global Travel Comparison",
		"groceryTitle":     "Essential Price Scouting",
		"healthTitle":      "Medical Liquidity Check",
		"expense":          "Expense",
		"income":           "Income",
		"sendMoney":        "Send Assets",
		"upiId":            "Registered UPI Assets",
	},
	LangHI: {
		"welcome":          "SMART BUDGET MANAGEMENT APP (SBM)",
		"greeting":         "वापसी पर स्वागत है, ",
		"balance":          "तरल पूंजी",
		"savings":          "पवित्र बचत",
		"earn":             "धन विस्तार",
		"travel":           "टिकट पुनर्गठन",
		"groceries":        "बाजार स्काउट",
		"advisor":          "एआई दरबान",
		"settings":         "सिस्टम कॉन्फ़िगरेशन",
		"health":           "महत्वपूर्ण भंडार",
		"addTransaction":   "पूंजी घटना पंजीकृत करें",
		"transfer":         "वायर ट्रांसफर",
		"interests":        "अर्जन नोड्स",
		"recoveryStrategy": "सिस्टम बहाली योजना",
		"ticketTitle":      "वैश्विक टिकट तुलना",
		"groceryTitle":     "आवश्यक मूल्य स्काउटिंग",
		"healthTitle":      "चिकित्सा तरलता जांच",
		"expense":          "व्यय",
		"income":           "आय",
		"sendMoney":        "पूंजी भेजें",
		"upiId":            "पंजीकृत यूपीआई आईडी",
	},
	LangES: {
		"welcome":          "SMART BUDGET MANAGEMENT APP (SBM)",
		"greeting":         "Bienvenido de nuevo, ",
		"balance":          "Capital Líquido",
		"savings":          "Reservas Sagradas",
		"earn":             "Expansión de Ingresos",
		"travel":           "Búsqueda: Entradas",
		"groceries":        "Búsqueda: Mercado",
		"advisor":          "Conserje de IA",
		"settings":         "Centro del Sistema",
		"health":           "Reservas Vitales",
		"addTransaction":   "Registrar Evento de Capital",
		"transfer":         "Transferir Activos",
		"interests":        "Nodos de Ganancia",
		"recoveryStrategy": "Plan de Restauración del Sistema",
		"ticketTitle":      "Comparación de Viajes Globales",
		"groceryTitle":     "Búsqueda de Precios Esenciales",
		"healthTitle":      "Control de Liquidez Médica",
		"expense":          "Gasto",
		"income":           "Ingreso",
		"sendMoney":        "Enviar Activos",
		"upiId":            "Activos UPI Registrados",
	},
	LangFR: {
		"welcome":          "SMART BUDGET MANAGEMENT APP (SBM)",
		"greeting":         "Bienvenue, ",
		"balance":          "Capital Liquide",
		"savings":          "Réserves Sacrées",
		"earn":             "Expansion des Revenus",
		"travel":           "Scout : Billets",
		"groceries":        "Scout : Marché",
		"advisor":          "Concierge IA",
		"settings":         "Centre Système",
		"health":           "Réserves Vitales",
		"addTransaction":   "Enregistrer un Événement",
		"transfer":         "Transférer des Actifs",
		"interests":        "Nœuds de Gains",
		"recoveryStrategy": "Plan de Restauration du Système",
		"ticketTitle":      "Comparaison des Voyages",
		"groceryTitle":     "Scoutisme des Prix Essentiels",
		"healthTitle":      "Contrôle de Liquidité Médicale",
		"expense":          "Dépense",
		"income":           "Revenu",
		"sendMoney":        "Envoyer des Actifs",
		"upiId":            "UPI Enregistrés",
	},
}
