package catalog

import "saasStackAnalyzer/domain"

const (
	DefaultCategory = "Other"

	// MeteredCategory prices by usage units instead of seats
	MeteredCategory = "Observability & Monitoring"

	DefaultMeteredProduct = "Infrastructure monitoring"
)

// MeteredProducts maps each metered product to the unit its quantity counts
var MeteredProducts = map[string]string{
	"Application security":      "host-hours (8 GiB)",
	"Real user monitoring":      "sessions",
	"Infrastructure monitoring": "host-hours (any size)",
	"Full-stack monitoring":     "host-hours (8 GiB)",
}

// DefaultProfile is what unknown vendors resolve to
func DefaultProfile() domain.VendorProfile {
	return domain.VendorProfile{
		Category:        DefaultCategory,
		Features:        []string{},
		AvgPricePerUnit: 0,
		MarketPosition:  domain.MarketPositionStandard,
	}
}

// DefaultVendors is the built-in reference table
func DefaultVendors() map[string]domain.VendorProfile {
	out := make(map[string]domain.VendorProfile, len(defaultVendors))
	for name, p := range defaultVendors {
		out[name] = p.Clone()
	}
	return out
}

var defaultVendors = map[string]domain.VendorProfile{
	// AI & ML
	"Anthropic Claude": {Category: "AI & ML", Features: []string{"Conversational AI", "Text Analysis", "Content Generation"}, AvgPricePerUnit: 25, MarketPosition: domain.MarketPositionStandard},
	"OpenAI API":       {Category: "AI & ML", Features: []string{"Natural Language Processing", "Text Generation", "Code Generation"}, AvgPricePerUnit: 20, MarketPosition: domain.MarketPositionStandard},

	// Analytics & BI
	"Looker":     {Category: "Analytics & BI", Features: []string{"Data Platform", "Business Intelligence", "Data Modeling"}, AvgPricePerUnit: 125, MarketPosition: domain.MarketPositionPremium},
	"Power BI":   {Category: "Analytics & BI", Features: []string{"Data Visualization", "Business Intelligence", "Dashboard Creation"}, AvgPricePerUnit: 20, MarketPosition: domain.MarketPositionStandard},
	"Qlik Sense": {Category: "Analytics & BI", Features: []string{"Data Visualization", "Self-Service BI", "Associative Model"}, AvgPricePerUnit: 30, MarketPosition: domain.MarketPositionStandard},
	"Tableau":    {Category: "Analytics & BI", Features: []string{"Data Visualization", "Business Intelligence", "Dashboard Creation"}, AvgPricePerUnit: 75, MarketPosition: domain.MarketPositionPremium},

	// Communication
	"Discord":         {Category: "Communication", Features: []string{"Voice Chat", "Text Messaging", "Screen Sharing"}, AvgPricePerUnit: 8, MarketPosition: domain.MarketPositionBudget},
	"Google Meet":     {Category: "Communication", Features: []string{"Video Conferencing", "Screen Sharing", "Recording"}, AvgPricePerUnit: 8, MarketPosition: domain.MarketPositionBudget},
	"Microsoft Teams": {Category: "Communication", Features: []string{"Video Conferencing", "Team Chat", "File Sharing"}, AvgPricePerUnit: 10, MarketPosition: domain.MarketPositionStandard},
	"Slack":           {Category: "Communication", Features: []string{"Team Messaging", "File Sharing", "App Integration"}, AvgPricePerUnit: 12, MarketPosition: domain.MarketPositionStandard},
	"Zoom":            {Category: "Communication", Features: []string{"Video Conferencing", "Screen Sharing", "Recording"}, AvgPricePerUnit: 20, MarketPosition: domain.MarketPositionStandard},

	// CRM
	"Freshsales": {Category: "CRM", Features: []string{"Contact Management", "Sales Pipeline", "Email Tracking"}, AvgPricePerUnit: 29, MarketPosition: domain.MarketPositionStandard},
	"HubSpot":    {Category: "CRM", Features: []string{"Contact Management", "Email Marketing", "Landing Pages"}, AvgPricePerUnit: 100, MarketPosition: domain.MarketPositionStandard},
	"Pipedrive":  {Category: "CRM", Features: []string{"Contact Management", "Sales Pipeline", "Email Integration"}, AvgPricePerUnit: 25, MarketPosition: domain.MarketPositionStandard},
	"Salesforce": {Category: "CRM", Features: []string{"Contact Management", "Sales Pipeline", "Email Marketing"}, AvgPricePerUnit: 150, MarketPosition: domain.MarketPositionPremium},
	"Zoho CRM":   {Category: "CRM", Features: []string{"Contact Management", "Sales Pipeline", "Email Marketing"}, AvgPricePerUnit: 20, MarketPosition: domain.MarketPositionBudget},

	// Customer Support
	"Freshdesk":  {Category: "Customer Support", Features: []string{"Ticket Management", "Knowledge Base", "Live Chat"}, AvgPricePerUnit: 29, MarketPosition: domain.MarketPositionStandard},
	"ServiceNow": {Category: "Customer Support", Features: []string{"IT Service Management", "Workflow Automation", "Knowledge Management"}, AvgPricePerUnit: 150, MarketPosition: domain.MarketPositionPremium},
	"Zendesk":    {Category: "Customer Support", Features: []string{"Ticket Management", "Knowledge Base", "Live Chat"}, AvgPricePerUnit: 89, MarketPosition: domain.MarketPositionStandard},

	// Design & Creative
	"Adobe Creative Cloud": {Category: "Design & Creative", Features: []string{"Photo Editing", "Video Editing", "Graphic Design"}, AvgPricePerUnit: 75, MarketPosition: domain.MarketPositionPremium},
	"Canva":                {Category: "Design & Creative", Features: []string{"Graphic Design", "Templates", "Brand Management"}, AvgPricePerUnit: 15, MarketPosition: domain.MarketPositionBudget},
	"Figma":                {Category: "Design & Creative", Features: []string{"UI/UX Design", "Prototyping", "Collaboration"}, AvgPricePerUnit: 15, MarketPosition: domain.MarketPositionStandard},

	// Development Tools
	"GitHub": {Category: "Development Tools", Features: []string{"Version Control", "Code Collaboration", "Issue Tracking"}, AvgPricePerUnit: 7, MarketPosition: domain.MarketPositionStandard},
	"GitLab": {Category: "Development Tools", Features: []string{"Version Control", "CI/CD", "Issue Tracking"}, AvgPricePerUnit: 19, MarketPosition: domain.MarketPositionStandard},

	// E-commerce
	"Shopify":     {Category: "E-commerce", Features: []string{"Online Store", "Payment Processing", "Inventory Management"}, AvgPricePerUnit: 79, MarketPosition: domain.MarketPositionStandard},
	"WooCommerce": {Category: "E-commerce", Features: []string{"WordPress E-commerce", "Payment Processing", "Inventory Management"}, AvgPricePerUnit: 25, MarketPosition: domain.MarketPositionBudget},

	// Email Marketing
	"Campaign Monitor": {Category: "Email Marketing", Features: []string{"Email Design", "Automation", "Segmentation"}, AvgPricePerUnit: 29, MarketPosition: domain.MarketPositionStandard},
	"Constant Contact": {Category: "Email Marketing", Features: []string{"Email Marketing", "Event Management", "Social Media"}, AvgPricePerUnit: 25, MarketPosition: domain.MarketPositionStandard},
	"Mailchimp":        {Category: "Email Marketing", Features: []string{"Email Marketing", "Automation", "Landing Pages"}, AvgPricePerUnit: 20, MarketPosition: domain.MarketPositionStandard},

	// Finance & Accounting
	"FreshBooks":        {Category: "Finance & Accounting", Features: []string{"Invoicing", "Time Tracking", "Expense Management"}, AvgPricePerUnit: 25, MarketPosition: domain.MarketPositionStandard},
	"QuickBooks Online": {Category: "Finance & Accounting", Features: []string{"Accounting", "Invoicing", "Expense Tracking"}, AvgPricePerUnit: 30, MarketPosition: domain.MarketPositionStandard},
	"Wave":              {Category: "Finance & Accounting", Features: []string{"Accounting", "Invoicing", "Receipt Scanning"}, AvgPricePerUnit: 0, MarketPosition: domain.MarketPositionBudget},
	"Xero":              {Category: "Finance & Accounting", Features: []string{"Accounting", "Invoicing", "Bank Reconciliation"}, AvgPricePerUnit: 35, MarketPosition: domain.MarketPositionStandard},
	"MYOB":              {Category: "Finance & Accounting", Features: []string{"Accounting", "Invoicing", "Payroll"}, AvgPricePerUnit: 28, MarketPosition: domain.MarketPositionStandard},
	"Stripe Billing":    {Category: "Finance & Accounting", Features: []string{"Payments", "Subscription Billing", "Invoicing"}, AvgPricePerUnit: 25, MarketPosition: domain.MarketPositionStandard},
	"Sage Intacct":      {Category: "Finance & Accounting", Features: []string{"General Ledger", "AP/AR", "Multi-Entity Consolidation"}, AvgPricePerUnit: 60, MarketPosition: domain.MarketPositionPremium},
	"NetSuite":          {Category: "Finance & Accounting", Features: []string{"ERP", "Financials", "Billing"}, AvgPricePerUnit: 90, MarketPosition: domain.MarketPositionPremium},
	"Zuora":             {Category: "Finance & Accounting", Features: []string{"Subscription Billing", "CPQ", "Revenue Recognition"}, AvgPricePerUnit: 85, MarketPosition: domain.MarketPositionPremium},
	"Chargebee":         {Category: "Finance & Accounting", Features: []string{"Subscription Billing", "Revenue Recognition", "Dunning"}, AvgPricePerUnit: 40, MarketPosition: domain.MarketPositionStandard},
	"BILL (Bill.com)":   {Category: "Finance & Accounting", Features: []string{"AP Automation", "Payments", "Approvals"}, AvgPricePerUnit: 20, MarketPosition: domain.MarketPositionStandard},
	"Expensify":         {Category: "Finance & Accounting", Features: []string{"Expense Reports", "Corporate Cards", "Reimbursements"}, AvgPricePerUnit: 9, MarketPosition: domain.MarketPositionBudget},
	"Ramp":              {Category: "Finance & Accounting", Features: []string{"Spend Management", "Corporate Cards", "Expense Automation"}, AvgPricePerUnit: 10, MarketPosition: domain.MarketPositionBudget},
	"Brex":              {Category: "Finance & Accounting", Features: []string{"Corporate Cards", "Spend Management", "Bill Pay"}, AvgPricePerUnit: 12, MarketPosition: domain.MarketPositionStandard},
	"SAP Concur":        {Category: "Finance & Accounting", Features: []string{"Expense", "Travel", "Invoice"}, AvgPricePerUnit: 35, MarketPosition: domain.MarketPositionStandard},

	// HR & Recruiting
	"ADP":      {Category: "HR & Recruiting", Features: []string{"Payroll", "HR Management", "Benefits Administration"}, AvgPricePerUnit: 45, MarketPosition: domain.MarketPositionStandard},
	"BambooHR": {Category: "HR & Recruiting", Features: []string{"Employee Database", "Time Tracking", "Performance Management"}, AvgPricePerUnit: 8, MarketPosition: domain.MarketPositionStandard},
	"Gusto":    {Category: "HR & Recruiting", Features: []string{"Payroll", "Benefits Administration", "HR Tools"}, AvgPricePerUnit: 12, MarketPosition: domain.MarketPositionBudget},
	"Workday":  {Category: "HR & Recruiting", Features: []string{"Human Capital Management", "Payroll", "Benefits Administration"}, AvgPricePerUnit: 125, MarketPosition: domain.MarketPositionPremium},

	// Marketing
	"ActiveCampaign": {Category: "Marketing", Features: []string{"Email Marketing", "Marketing Automation", "CRM"}, AvgPricePerUnit: 45, MarketPosition: domain.MarketPositionStandard},
	"Marketo":        {Category: "Marketing", Features: []string{"Lead Management", "Email Marketing", "Campaign Management"}, AvgPricePerUnit: 195, MarketPosition: domain.MarketPositionPremium},
	"Pardot":         {Category: "Marketing", Features: []string{"Lead Management", "Email Marketing", "Lead Scoring"}, AvgPricePerUnit: 125, MarketPosition: domain.MarketPositionPremium},

	// Project Management
	"Asana":      {Category: "Project Management", Features: []string{"Task Management", "Team Collaboration", "Timeline View"}, AvgPricePerUnit: 24, MarketPosition: domain.MarketPositionStandard},
	"Basecamp":   {Category: "Project Management", Features: []string{"Project Organization", "Message Boards", "To-do Lists"}, AvgPricePerUnit: 18, MarketPosition: domain.MarketPositionStandard},
	"ClickUp":    {Category: "Project Management", Features: []string{"Task Management", "Time Tracking", "Goal Setting"}, AvgPricePerUnit: 9, MarketPosition: domain.MarketPositionBudget},
	"Jira":       {Category: "Project Management", Features: []string{"Issue Tracking", "Agile Planning", "Reporting"}, AvgPricePerUnit: 14, MarketPosition: domain.MarketPositionStandard},
	"Monday.com": {Category: "Project Management", Features: []string{"Project Tracking", "Team Collaboration", "Automation"}, AvgPricePerUnit: 24, MarketPosition: domain.MarketPositionStandard},
	"Trello":     {Category: "Project Management", Features: []string{"Kanban Boards", "Task Management", "Team Collaboration"}, AvgPricePerUnit: 10, MarketPosition: domain.MarketPositionBudget},

	// Security & IT
	"1Password": {Category: "Security & IT", Features: []string{"Password Management", "Secure Document Storage", "Team Management"}, AvgPricePerUnit: 8, MarketPosition: domain.MarketPositionStandard},
	"Bitwarden": {Category: "Security & IT", Features: []string{"Password Management", "Secure Notes", "Two-Factor Authentication"}, AvgPricePerUnit: 3, MarketPosition: domain.MarketPositionBudget},
	"LastPass":  {Category: "Security & IT", Features: []string{"Password Management", "Secure Sharing", "Multi-Factor Authentication"}, AvgPricePerUnit: 6, MarketPosition: domain.MarketPositionBudget},
	"Okta":      {Category: "Security & IT", Features: []string{"Identity Management", "Single Sign-On", "Multi-Factor Authentication"}, AvgPricePerUnit: 8, MarketPosition: domain.MarketPositionStandard},

	// Observability & Monitoring
	"Dynatrace":            {Category: "Observability & Monitoring", Features: []string{"APM", "Infrastructure Monitoring", "AI-assisted Insights"}, AvgPricePerUnit: 70, MarketPosition: domain.MarketPositionPremium},
	"New Relic":            {Category: "Observability & Monitoring", Features: []string{"APM", "Logs", "Metrics & Traces"}, AvgPricePerUnit: 49, MarketPosition: domain.MarketPositionStandard},
	"AppDynamics":          {Category: "Observability & Monitoring", Features: []string{"APM", "Business Transaction Monitoring", "Infrastructure"}, AvgPricePerUnit: 65, MarketPosition: domain.MarketPositionPremium},
	"Splunk Observability": {Category: "Observability & Monitoring", Features: []string{"Logs", "APM", "Real-time Metrics"}, AvgPricePerUnit: 80, MarketPosition: domain.MarketPositionPremium},
	"Datadog":              {Category: "Observability & Monitoring", Features: []string{"APM", "Infrastructure", "Log Management"}, AvgPricePerUnit: 45, MarketPosition: domain.MarketPositionStandard}}
