package core

// Summary holds the aggregate totals over all transactions.
type Summary struct {
	TotalIncome   float64
	TotalExpenses float64
	Balance       float64
}

// ComputeSummary derives the totals from the given transactions. Records with
// an unknown type contribute to neither sum.
func ComputeSummary(txs []Transaction) Summary {
	var s Summary
	for _, tx := range txs {
		switch tx.Type {
		case TypeIncome:
			s.TotalIncome += tx.Amount
		case TypeExpense:
			s.TotalExpenses += tx.Amount
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpenses
	return s
}
