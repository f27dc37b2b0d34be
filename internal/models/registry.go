package models

// Model is implemented by all resources stored in the database.
type Model interface {
	Self() string
}

// Registry is a slice of all models available.
//
// It is maintained so that operations that affect all models do not need to explicitly
// iterate over every single model, which risks forgetting one when adding a new model.
// The order is the order in which tables can safely be emptied.
var Registry = []Model{
	MatchRule{},
	MonthClosure{},
	Repayment{},
	Debt{},
	Goal{},
	Budget{},
	Expense{},
	Income{},
	Category{},
	Setting{},
}
