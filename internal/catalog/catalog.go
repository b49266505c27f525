package catalog

// Dataset describes how one sheet of the contacts workbook is displayed,
// filtered, and mined for emails. The catalog is static: it is part of the
// contract with the workbook file, defined once at process start.
type Dataset struct {
	Sheet       string
	DisplayName string
	Description string

	// EmailColumns are the columns scanned for contact emails.
	EmailColumns []string

	// FilterColumns get a categorical select filter, when non-empty.
	FilterColumns []string

	// DedupeKeys, when set, drop rows sharing the same values in these
	// columns, keeping the first occurrence in source order.
	DedupeKeys []string

	// DisplayColumns is the ordered projection shown and exported.
	// Configured columns absent from the sheet are silently dropped.
	DisplayColumns []string
}

// Sheet identifiers, matching the workbook's sheet names.
const (
	RiksdagMPs       = "Riksdag_SeatHolders_349"
	EUMEPs           = "EU_MEPs_All_2024_2029"
	GovMinisters     = "Sweden_Gov_Ministers"
	GovDeputies      = "Sweden_Gov_Deputies_Links"
	Embassies        = "Sweden_Embassies_All"
	InstagramTop1000 = "Influencers_IG_Top1000"
	TikTokTop100     = "Top_100_TikTok"
	XTop200          = "Top_200_X"
)

var datasets = map[string]Dataset{
	RiksdagMPs: {
		Sheet:          RiksdagMPs,
		DisplayName:    "Riksdag MPs",
		Description:    "Swedish Parliament seat holders",
		EmailColumns:   []string{"Email"},
		FilterColumns:  []string{"Party"},
		DisplayColumns: []string{"Name", "Party", "Email"},
	},
	EUMEPs: {
		Sheet:          EUMEPs,
		DisplayName:    "EU MEPs 2024–2029",
		Description:    "Members of the European Parliament",
		EmailColumns:   []string{"Email (generated guess)"},
		FilterColumns:  []string{"Country"},
		DisplayColumns: []string{"Name", "Profile_URL", "National_party", "Email (generated guess)"},
	},
	GovMinisters: {
		Sheet:          GovMinisters,
		DisplayName:    "Sweden Government Ministers",
		Description:    "Government ministers and registrator contacts",
		EmailColumns:   []string{"Contact email (registrator)"},
		FilterColumns:  []string{"Ministry"},
		DisplayColumns: []string{"Name", "Title", "Contact email (registrator)"},
	},
	GovDeputies: {
		Sheet:          GovDeputies,
		DisplayName:    "Sweden Government Deputies",
		Description:    "Deputies/state secretaries (no emails in sheet)",
		DisplayColumns: []string{"Minister", "Minister title", "Deputies page (state secretaries)"},
	},
	Embassies: {
		Sheet:          Embassies,
		DisplayName:    "Sweden Embassies & Consulates",
		Description:    "Swedish embassies and consulates",
		EmailColumns:   []string{"Email"},
		FilterColumns:  []string{"Location"},
		DisplayColumns: []string{"Country/Area", "Location", "Contact_URL", "Email"},
	},
	InstagramTop1000: {
		Sheet:          InstagramTop1000,
		DisplayName:    "Influencers – Instagram Top 1000",
		Description:    "Top Swedish Instagram accounts (no emails in sheet)",
		DedupeKeys:     []string{"IG_Handle"},
		DisplayColumns: []string{"Name", "Instagram_URL"},
	},
	TikTokTop100: {
		Sheet:          TikTokTop100,
		DisplayName:    "Influencers – TikTok Top 100",
		Description:    "Top TikTok accounts",
		DisplayColumns: []string{"Name", "TikTok_Handle", "TikTok_URL", "Followers"},
	},
	XTop200: {
		Sheet:          XTop200,
		DisplayName:    "Influencers – X Top 200",
		Description:    "Top X accounts",
		FilterColumns:  []string{"Category"},
		DisplayColumns: []string{"Name", "X_Handle", "X_URL", "Followers", "Followers_text", "Category"},
	},
}

// CategoryGroup is one labelled group of datasets in the selector sidebar.
type CategoryGroup struct {
	Label  string
	Sheets []string
}

// Groups lists the datasets by category, in display order.
var Groups = []CategoryGroup{
	{Label: "Europe", Sheets: []string{EUMEPs}},
	{Label: "Sweden", Sheets: []string{
		RiksdagMPs,
		GovMinisters,
		GovDeputies,
		Embassies,
		InstagramTop1000,
		TikTokTop100,
	}},
	{Label: "International", Sheets: []string{XTop200}},
}

// LinkColumns are URL-bearing columns rendered as "Open profile" links.
var LinkColumns = map[string]bool{
	"Instagram_URL":    true,
	"X_URL":            true,
	"TikTok_URL":       true,
	"Profile_URL":      true,
	"SwedenAbroad_URL": true,
	"Contact_URL":      true,
}

// Lookup returns the dataset config for a sheet name.
func Lookup(sheet string) (Dataset, bool) {
	ds, ok := datasets[sheet]
	return ds, ok
}

// DefaultSheet is the dataset shown when none is selected.
func DefaultSheet() string {
	return Groups[0].Sheets[0]
}

// Sheets lists all configured sheet names in sidebar order.
func Sheets() []string {
	var names []string
	for _, g := range Groups {
		names = append(names, g.Sheets...)
	}
	return names
}
