package domain

import "time"

// Demo dataset for the SBM dashboard. The app ships as a demo: the ledger,
// goals and scouting screens start from these fixtures and live only in
// process memory.

// DefaultProfile is the session profile at startup.
func DefaultProfile() *UserProfile {
	return &UserProfile{
		Name:           "Alex Sterling",
		Gender:         "Male",
		Income:         75000,
		IncomeType:     "Professional",
		Preferences:    []string{"Delivery", "Stocks"},
		Country:        "United States",
		Language:       "en",
		Currency:       "USD",
		DarkMode:       true,
		StabilityIndex: 785,
	}
}

// DemoGoals seeds the savings registry.
func DemoGoals() []SavingGoal {
	return []SavingGoal{
		{ID: "s1", Name: "Academic Tuition", Purpose: PurposeSchoolFee, TargetAmount: 15000, CurrentAmount: 12400, Deadline: "2025-08-01", ReminderActive: true},
		{ID: "s2", Name: "Emergency Safety Net", Purpose: PurposeEmergency, TargetAmount: 20000, CurrentAmount: 4500, Deadline: "2026-01-01", ReminderActive: true, RecoveryMode: true},
		{ID: "s3", Name: "Wealth Portfolio", Purpose: PurposeInvestment, TargetAmount: 50000, CurrentAmount: 12000, Deadline: "2027-12-31", ReminderActive: false},
	}
}

// DemoTransactions seeds the ledger, newest-first.
func DemoTransactions() []TransactionRecord {
	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	return []TransactionRecord{
		{ID: "t1", Kind: KindExpense, Category: "Luxury Market", Amount: 1250, Date: day("2025-05-20"), Description: "Weekly Groceries - Dmart Selection"},
		{ID: "t2", Kind: KindIncome, Category: "Professional Fee", Amount: 8000, Date: day("2025-05-18"), Description: "Consultancy Retainer Inflow"},
		{ID: "t3", Kind: KindExpense, Category: "Travel Node", Amount: 450, Date: day("2025-05-17"), Description: "Flight Ticket - SkyLink Optimized"},
	}
}

// TicketComparisons is the static travel-scouting dataset.
func TicketComparisons() []TicketOption {
	return []TicketOption{
		{Mode: "Flight", Price: 450, Provider: "Indigo"},
		{Mode: "Train", Price: 65, Provider: "Rajdhani", Best: true},
		{Mode: "Bus", Price: 40, Provider: "RedBus"},
	}
}

// GroceryComparisons is the static market-scouting dataset.
func GroceryComparisons() []GroceryItem {
	return []GroceryItem{
		{Item: "Milk (1L)", Prices: map[string]float64{"dmart": 55, "bigbazaar": 58, "amazon": 62}},
		{Item: "Rice (5kg)", Prices: map[string]float64{"dmart": 480, "bigbazaar": 450, "amazon": 490}},
		{Item: "Potatoes (1kg)", Prices: map[string]float64{"dmart": 22, "bigbazaar": 28, "amazon": 35}},
	}
}

// UPIHandles is the demo payment-handle list for the transfer screen.
func UPIHandles() []string {
	return []string{
		"alex.sterling@oksbi",
		"wealth.manager@paytm",
		"sbm.luxury@axisbank",
		"emergency.fund@icici",
	}
}

// LoanAccounts is the static liability-portfolio dataset.
func LoanAccounts() []LoanAccount {
	return []LoanAccount{
		{ID: "1", Lender: "Standard Chartered", Type: "Personal", Principal: 50000, InterestRatePct: 8.5, Paid: 12000, MonthlyImpact: 12, Status: "On Track"},
		{ID: "2", Lender: "Chase Luxury Card", Type: "Credit Line", Principal: 15000, InterestRatePct: 14.2, Paid: 2500, MonthlyImpact: 8, Status: "On Track"},
		{ID: "3", Lender: "Global Education Fund", Type: "Student Loan", Principal: 35000, InterestRatePct: 4.5, Paid: 5000, MonthlyImpact: 5, Status: "At Risk", Warning: "Upcoming payment exceeds disposable income forecast."},
		{ID: "4", Lender: "HDFC Mortgage", Type: "Home Loan", Principal: 450000, InterestRatePct: 7.2, Paid: 85000, MonthlyImpact: 25, Status: "On Track"},
		{ID: "5", Lender: "Tesla Finance", Type: "Auto Loan", Principal: 65000, InterestRatePct: 3.9, Paid: 65000, MonthlyImpact: 0, Status: "Settled"},
	}
}

// SideIncomeIdeas is the static earning-channel dataset.
func SideIncomeIdeas() []SideIncomeIdea {
	return []SideIncomeIdea{
		{
			ID:          "delivery",
			Category:    "Delivery & Gig Nodes",
			Platforms:   []string{"Rapido", "Swiggy", "Zomato", "Zepto"},
			Description: "Earn immediately by joining high-demand logistics networks. These platforms allow flexible scheduling for quick liquidity.",
			Advice:      "Zepto and Swiggy are currently offering a 1.2x 'Rainy Day' bonus in your area. Rapido is best for peak-hour commuter nodes.",
		},
		{
			ID:          "teaching",
			Category:    "Academic & Tutoring Nodes",
			Platforms:   []string{"Chegg", "Unacademy", "BYJU'S", "Offline Tutor"},
			Description: "Monetize your intellectual assets. Academic mentoring provides stable, high-value hourly income compared to delivery.",
			Advice:      "Offline tutoring in your local sector has a 20% higher margin than digital platforms. Chegg is optimal for overnight global sessions.",
		},
	}
}
