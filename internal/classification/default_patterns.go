package classification

import "github.com/Veraticus/budget-buzz/internal/model"

// DefaultPatterns returns patterns for the default category set.
func DefaultPatterns() []Pattern {
	income := model.TransactionTypeIncome
	expense := model.TransactionTypeExpense

	return []Pattern{
		// Income
		{
			Name:       "Direct Deposit",
			Category:   "Salary",
			Type:       income,
			Regex:      `\b(DIRECTDEP|DIRECT\s*DEP|DIR\s*DEP|PAYROLL|SALARY|WAGES|PAYCHECK)\b`,
			Priority:   100,
			Confidence: 0.95,
		},
		{
			Name:       "Bonus",
			Category:   "Salary",
			Type:       income,
			Regex:      `\b(BONUS|COMMISSION|INCENTIVE)\b`,
			Priority:   85,
			Confidence: 0.85,
		},

		// Expenses, most specific first
		{
			Name:       "Food Delivery",
			Category:   "Food",
			Type:       expense,
			Regex:      `\b(UBER\s*EATS|DOORDASH|GRUBHUB|DELIVEROO|SWIGGY|ZOMATO)\b`,
			Priority:   90,
			Confidence: 0.90,
		},
		{
			Name:       "Rent Payment",
			Category:   "Rent",
			Type:       expense,
			Regex:      `\b(RENT|LEASE|MORTGAGE|LANDLORD|PROPERTY\s*MGMT)\b`,
			Priority:   80,
			Confidence: 0.85,
		},
		{
			Name:       "Utility Bill",
			Category:   "Utilities",
			Type:       expense,
			Regex:      `\b(ELECTRIC|ELECTRICITY|WATER|GAS\s*CO|POWER|INTERNET|COMCAST|XFINITY|VERIZON|AT&T|T-MOBILE)\b`,
			Priority:   75,
			Confidence: 0.80,
		},
		{
			Name:       "Groceries and Dining",
			Category:   "Food",
			Type:       expense,
			Regex:      `\b(GROCERY|GROCERIES|MARKET|SUPERMARKET|WHOLE\s*FOODS|SAFEWAY|TRADER\s*JOE|RESTAURANT|CAFE|COFFEE|STARBUCKS|PIZZA|BAKERY)\b`,
			Priority:   70,
			Confidence: 0.80,
		},
		{
			Name:       "Transport",
			Category:   "Transportation",
			Type:       expense,
			Regex:      `\b(UBER|LYFT|TAXI|SHELL|CHEVRON|EXXON|FUEL|PARKING|TRANSIT|METRO|TOLL|AIRLINES?)\b`,
			Priority:   65,
			Confidence: 0.80,
		},
		{
			Name:       "Streaming and Events",
			Category:   "Entertainment",
			Type:       expense,
			Regex:      `\b(NETFLIX|SPOTIFY|HULU|DISNEY|HBO|CINEMA|THEATER|THEATRE|STEAM|TICKETMASTER)\b`,
			Priority:   60,
			Confidence: 0.85,
		},
		{
			Name:       "Health",
			Category:   "Healthcare",
			Type:       expense,
			Regex:      `\b(PHARMACY|CVS|WALGREENS|CLINIC|HOSPITAL|DENTAL|DENTIST|MEDICAL|DOCTOR)\b`,
			Priority:   60,
			Confidence: 0.85,
		},
		{
			Name:       "Learning",
			Category:   "Education",
			Type:       expense,
			Regex:      `\b(TUITION|UNIVERSITY|COLLEGE|SCHOOL|COURSERA|UDEMY|BOOKSTORE)\b`,
			Priority:   60,
			Confidence: 0.80,
		},
		{
			Name:       "Retail",
			Category:   "Shopping",
			Type:       expense,
			Regex:      `\b(AMAZON|AMZN|TARGET|WALMART|COSTCO|EBAY|BEST\s*BUY|IKEA)\b`,
			Priority:   50,
			Confidence: 0.75,
		},
	}
}
