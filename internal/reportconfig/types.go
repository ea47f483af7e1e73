package reportconfig

// Kind identifies which of the two report configuration files a document is.
type Kind string

const (
	KindInitiation Kind = "initiation"
	KindUpdates    Kind = "updates"
)

// TemplateVersion is the version stamped into every generated config header.
const TemplateVersion = "1.0.0"

// CompanyFields lists the company_data keys in document order.
var CompanyFields = []string{
	"SECTOR",
	"LOCATION",
	"MARKET CAP",
	"EV/EBITDA",
	"TRAILING P/E",
	"PROFIT MARGIN",
	"TOTAL CASH/DEBT",
	"52 WEEK RANGE",
}

// TradeFields lists the trade_data keys in document order.
var TradeFields = []string{
	"DAILY VOLUME",
	"DAYS TO COVER",
	"SHARES SHORT",
	"BORROW COST",
}

// ReportSaving controls the PDF file name the report generator writes.
type ReportSaving struct {
	Ticker string `yaml:"ticker" json:"ticker"`
	Issue  string `yaml:"issue" json:"issue"`
	Date   string `yaml:"date" json:"date"`
}

// InitiationConfig mirrors Initiation/<SYMBOL>_config.yaml.
type InitiationConfig struct {
	IssueNumber   string            `yaml:"issue_number" json:"issue_number"`
	Date          string            `yaml:"date" json:"date"`
	TableDate     string            `yaml:"table_date" json:"table_date"`
	Theme         string            `yaml:"theme" json:"theme"`
	Ticker        string            `yaml:"ticker" json:"ticker"`
	Timeframe     string            `yaml:"timeframe" json:"timeframe"`
	CurrentTarget string            `yaml:"current_target" json:"current_target"`
	Downside      string            `yaml:"downside" json:"downside"`
	ReportSaving  ReportSaving      `yaml:"report_saving" json:"report_saving"`
	CompanyData   map[string]string `yaml:"company_data" json:"company_data"`
	TradeData     map[string]string `yaml:"trade_data" json:"trade_data"`
}

// UpdatesConfig mirrors Updates/<SYMBOL>_updateconfig.yaml.
type UpdatesConfig struct {
	IssueNumber           string `yaml:"issue_number" json:"issue_number"`
	UpdateNumber          string `yaml:"update_number" json:"update_number"`
	Date                  string `yaml:"date" json:"date"`
	Title                 string `yaml:"title" json:"title"`
	Ticker                string `yaml:"ticker" json:"ticker"`
	Stock                 string `yaml:"stock" json:"stock"`
	InitiationPublishDate string `yaml:"initiation_publish_date" json:"initiation_publish_date"`
	InitiationReportLink  string `yaml:"initiation_report_link" json:"initiation_report_link"`
	PriceAtPublication    string `yaml:"price_at_publication" json:"price_at_publication"`
	RecentPrice           string `yaml:"recent_price" json:"recent_price"`
	TargetPrice           string `yaml:"target_price" json:"target_price"`
}
