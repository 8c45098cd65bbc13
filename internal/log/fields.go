package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldSuccess     = "success"
	FieldID          = "id"
	FieldKind        = "kind"
	FieldCategory    = "category"
	FieldAmount      = "amount"
	FieldMonth       = "month"
	FieldYear        = "year"
	FieldAccountID   = "account_id"
	FieldSourceID    = "source_account_id"
	FieldDestID      = "destination_account_id"
	FieldLender      = "lender"
	FieldTermMonths  = "term_months"
	FieldInstallment = "monthly_installment"
	FieldTable       = "table"
	FieldRowCount    = "row_count"
	FieldPath        = "path"
)

// Components defines standard component names
const (
	ComponentApp         = "app"
	ComponentLedger      = "ledger"
	ComponentStorage     = "storage"
	ComponentAggregation = "aggregation"
	ComponentPayoff      = "payoff"
	ComponentBudget      = "budget"
	ComponentTransfer    = "transfer"
	ComponentSettings    = "settings"
	ComponentBackup      = "backup"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpRead     = "read"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpList     = "list"
	OpExport   = "export"
	OpImport   = "import"
	OpValidate = "validate"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
