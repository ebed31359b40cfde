package contract

// Contract rows are denormalized snapshots of the employee at signing time.
// The console only reads them, so the fields stay flat.
type Contract struct {
	ID             int64  `json:"id"`
	EmployeeName   string `json:"employee_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Department     string `json:"department"`
	HireDate       string `json:"hire_date"`
	ContractNumber string `json:"contract_number"`
	ProbationType  string `json:"probation_type"`
}

const (
	ProbationStandard = "standard"
	ProbationExtended = "extended"
	ProbationNone     = "none"
)
