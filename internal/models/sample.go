package models

var sampleUsers = []User{
	{Record{1, "John Doe", "john@example.com", "Admin", "2024-01-15"}, StatusActive},
	{Record{2, "Jane Smith", "jane@example.com", "User", "2024-01-16"}, StatusActive},
	{Record{3, "Bob Johnson", "bob@example.com", "Editor", "2024-01-17"}, StatusInactive},
	{Record{4, "Alice Brown", "alice@example.com", "User", "2024-01-18"}, StatusActive},
	{Record{5, "Charlie Wilson", "charlie@example.com", "Admin", "2024-01-19"}, StatusActive},
	{Record{6, "Diana Miller", "diana@example.com", "User", "2024-01-20"}, StatusInactive},
	{Record{7, "Edward Davis", "edward@example.com", "Editor", "2024-01-21"}, StatusActive},
	{Record{8, "Fiona Garcia", "fiona@example.com", "User", "2024-01-22"}, StatusActive},
	{Record{9, "George Martinez", "george@example.com", "Admin", "2024-01-23"}, StatusInactive},
	{Record{10, "Hannah Lee", "hannah@example.com", "User", "2024-01-24"}, StatusActive},
	{Record{11, "Ian Taylor", "ian@example.com", "Editor", "2024-01-25"}, StatusActive},
	{Record{12, "Julia Clark", "julia@example.com", "User", "2024-01-26"}, StatusActive},
	{Record{13, "Kevin Lewis", "kevin@example.com", "User", "2024-01-27"}, StatusInactive},
	{Record{14, "Lisa Walker", "lisa@example.com", "Admin", "2024-01-28"}, StatusActive},
	{Record{15, "Mike Hall", "mike@example.com", "User", "2024-01-29"}, StatusActive},
}

// SampleUsers returns a fresh copy of the built-in user set.
func SampleUsers() []User {
	out := make([]User, len(sampleUsers))
	copy(out, sampleUsers)
	return out
}

// SampleRecords is the user set without the status column.
func SampleRecords() []Record {
	out := make([]Record, len(sampleUsers))
	for i, u := range sampleUsers {
		out[i] = u.Record
	}
	return out
}
