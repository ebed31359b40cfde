package contract

import (
	"context"

	"hr-console/internal/shared/listview"
)

type Service interface {
	List(ctx context.Context, crit listview.Criteria, win listview.Window) (listview.Page[Contract], error)
	GetByID(ctx context.Context, id int64) (Contract, error)
}

type service struct {
	contracts []Contract
}

func NewService(contracts []Contract) Service {
	return &service{contracts: contracts}
}

var contractFields = listview.Fields[Contract]{
	Searchable: []func(Contract) string{
		func(c Contract) string { return c.EmployeeName },
		func(c Contract) string { return c.ContractNumber },
		func(c Contract) string { return c.Email },
	},
	Categorical: map[string]func(Contract) string{
		"department":     func(c Contract) string { return c.Department },
		"probation_type": func(c Contract) string { return c.ProbationType },
	},
}

func (s *service) List(ctx context.Context, crit listview.Criteria, win listview.Window) (listview.Page[Contract], error) {
	return listview.AssembleClient(s.contracts, crit, contractFields, win), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (Contract, error) {
	for _, c := range s.contracts {
		if c.ID == id {
			return c, nil
		}
	}
	return Contract{}, ErrContractNotFound
}
