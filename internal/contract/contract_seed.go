package contract

// SeedContracts returns the sample catalogue served until contract
// management gets its own persistence.
func SeedContracts() []Contract {
	return []Contract{
		{
			ID:             1,
			EmployeeName:   "Ahmad Fauzi",
			Email:          "ahmad.fauzi@example.com",
			Phone:          "0812-3456-7890",
			Department:     "Engineering",
			HireDate:       "2023-02-01",
			ContractNumber: "CTR-2023-0001",
			ProbationType:  ProbationStandard,
		},
		{
			ID:             2,
			EmployeeName:   "Siti Rahma",
			Email:          "siti.rahma@example.com",
			Phone:          "0813-9876-5432",
			Department:     "Human Resources",
			HireDate:       "2022-08-15",
			ContractNumber: "CTR-2022-0042",
			ProbationType:  ProbationNone,
		},
		{
			ID:             3,
			EmployeeName:   "Budi Santoso",
			Email:          "budi.santoso@example.com",
			Phone:          "0815-1111-2222",
			Department:     "Finance",
			HireDate:       "2024-01-10",
			ContractNumber: "CTR-2024-0003",
			ProbationType:  ProbationExtended,
		},
		{
			ID:             4,
			EmployeeName:   "Dewi Lestari",
			Email:          "dewi.lestari@example.com",
			Phone:          "0817-3333-4444",
			Department:     "Engineering",
			HireDate:       "2024-05-20",
			ContractNumber: "CTR-2024-0019",
			ProbationType:  ProbationStandard,
		},
	}
}
