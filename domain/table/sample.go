package table

// Sample returns the fixed demonstration table shown when the user has
// not uploaded anything: 7 rows of retail-flavored data with a mix of
// categorical and numeric columns.
func Sample() *Table {
	return MustNew([]Column{
		{Name: "Category", Values: []string{"Electronics", "Clothing", "Food", "Books", "Sports", "Home", "Toys"}},
		{Name: "Sales", Values: []string{"15000", "8000", "12000", "5000", "7000", "9000", "6000"}},
		{Name: "Profit", Values: []string{"3000", "1600", "2400", "1000", "1400", "1800", "1200"}},
		{Name: "Month", Values: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul"}},
		{Name: "Growth_Rate", Values: []string{"15", "8", "12", "5", "7", "9", "6"}},
		{Name: "Region", Values: []string{"North", "South", "East", "West", "North", "South", "East"}},
	})
}
