package catalog

import "github.com/alphanifty/alphanifty_service/internal/domain/entities"

// Built-in catalog served when no catalog file is configured.
// Returns are annualised percentages as of the last factsheet refresh.

var defaultBaskets = []entities.Basket{
	{
		ID:                   "1",
		Name:                 "Blue-chip Elite",
		Description:          "Large-cap leaders with consistent earnings and strong balance sheets",
		Color:                "#1E3A8A",
		Category:             "Equity",
		RiskLevel:            entities.RiskLevelMedium,
		RiskPercentage:       45,
		MinInvestment:        5000,
		MinReturn:            10,
		MaxReturn:            14,
		CAGR1Y:               14.2,
		CAGR3Y:               15.8,
		CAGR5Y:               13.9,
		SharpeRatio:          1.12,
		TimeHorizon:          "5+ years",
		ExperienceLevel:      "Beginner",
		AgeRange:             "25-45",
		Goals:                []string{"Wealth Creation", "Retirement"},
		Funds:                []entities.EntityID{"101", "102", "103"},
		Philosophy:           "Own the market leaders and let compounding work",
		Rationale:            "Large caps have lower drawdowns while tracking India's GDP growth",
		SuitableFor:          "First-time equity investors with a long horizon",
		RebalancingFrequency: "Quarterly",
	},
	{
		ID:                   "2",
		Name:                 "Dividend Champions",
		Description:          "Companies with a long record of stable and rising dividends",
		Color:                "#047857",
		Category:             "Equity",
		RiskLevel:            entities.RiskLevelLow,
		RiskPercentage:       30,
		MinInvestment:        3000,
		MinReturn:            8,
		MaxReturn:            11,
		CAGR1Y:               11.4,
		CAGR3Y:               12.6,
		CAGR5Y:               11.8,
		SharpeRatio:          0.98,
		TimeHorizon:          "3+ years",
		ExperienceLevel:      "Beginner",
		AgeRange:             "35-60",
		Goals:                []string{"Regular Income", "Retirement"},
		Funds:                []entities.EntityID{"104", "105"},
		Philosophy:           "Cash-generating businesses that share profits with owners",
		Rationale:            "Dividend payers cushion falls and provide a steady income stream",
		SuitableFor:          "Conservative investors who want equity with income",
		RebalancingFrequency: "Half-yearly",
	},
	{
		ID:                   "3",
		Name:                 "Tech Innovators",
		Description:          "Technology and digital platform businesses driving the next decade",
		Color:                "#7C3AED",
		Category:             "Thematic",
		RiskLevel:            entities.RiskLevelHigh,
		RiskPercentage:       75,
		MinInvestment:        5000,
		MinReturn:            12,
		MaxReturn:            20,
		CAGR1Y:               22.5,
		CAGR3Y:               18.4,
		CAGR5Y:               21.1,
		SharpeRatio:          1.05,
		TimeHorizon:          "7+ years",
		ExperienceLevel:      "Advanced",
		AgeRange:             "22-40",
		Goals:                []string{"Wealth Creation"},
		Funds:                []entities.EntityID{"106", "107"},
		Philosophy:           "Back the companies building India's digital infrastructure",
		Rationale:            "Secular growth in software exports and digital consumption",
		SuitableFor:          "Aggressive investors comfortable with volatility",
		RebalancingFrequency: "Quarterly",
	},
	{
		ID:                   "4",
		Name:                 "Balanced Growth",
		Description:          "A hybrid mix of equity and debt for smoother returns",
		Color:                "#0E7490",
		Category:             "Hybrid",
		RiskLevel:            entities.RiskLevelMedium,
		RiskPercentage:       40,
		MinInvestment:        2000,
		MinReturn:            9,
		MaxReturn:            12,
		CAGR1Y:               12.1,
		CAGR3Y:               11.9,
		CAGR5Y:               11.2,
		SharpeRatio:          1.21,
		TimeHorizon:          "3+ years",
		ExperienceLevel:      "Intermediate",
		AgeRange:             "30-55",
		Goals:                []string{"Child Education", "Wealth Creation"},
		Funds:                []entities.EntityID{"102", "108"},
		Philosophy:           "Dynamic asset allocation between equity and debt",
		Rationale:            "Debt allocation limits drawdowns during corrections",
		SuitableFor:          "Investors who want equity exposure with a safety net",
		RebalancingFrequency: "Quarterly",
	},
	{
		ID:                   "5",
		Name:                 "Safe Harbour",
		Description:          "High-quality short duration debt for capital preservation",
		Color:                "#475569",
		Category:             "Debt",
		RiskLevel:            entities.RiskLevelLow,
		RiskPercentage:       10,
		MinInvestment:        1000,
		MinReturn:            6,
		MaxReturn:            8,
		CAGR1Y:               7.3,
		CAGR3Y:               6.1,
		CAGR5Y:               6.6,
		SharpeRatio:          1.45,
		TimeHorizon:          "1+ years",
		ExperienceLevel:      "Beginner",
		AgeRange:             "Any",
		Goals:                []string{"Emergency Fund", "Short-term Goals"},
		Funds:                []entities.EntityID{"108"},
		Philosophy:           "Protect capital first, earn a little more than a savings account",
		Rationale:            "AAA-rated short duration papers carry minimal credit and rate risk",
		SuitableFor:          "Parking money for goals within two years",
		RebalancingFrequency: "Yearly",
	},
	{
		ID:                   "6",
		Name:                 "Green Energy",
		Description:          "Renewables, EV supply chain and energy transition leaders",
		Color:                "#15803D",
		Category:             "Thematic",
		RiskLevel:            entities.RiskLevelHigh,
		RiskPercentage:       70,
		MinInvestment:        5000,
		MinReturn:            12,
		MaxReturn:            18,
		CAGR1Y:               19.6,
		CAGR3Y:               24.2,
		CAGR5Y:               17.5,
		SharpeRatio:          0.94,
		TimeHorizon:          "7+ years",
		ExperienceLevel:      "Intermediate",
		AgeRange:             "25-45",
		Goals:                []string{"Wealth Creation", "Sustainable Investing"},
		Funds:                []entities.EntityID{"109", "103"},
		Philosophy:           "Invest in the decarbonisation of the Indian economy",
		Rationale:            "Policy support and falling costs make renewables a multi-decade theme",
		SuitableFor:          "Long-term investors who want thematic exposure",
		RebalancingFrequency: "Quarterly",
	},
	{
		ID:                   "b14",
		Name:                 "Nifty Momentum Core",
		Description:          "Weighted NAV portfolio tracked against the NIFTY 50 index",
		Color:                "#B45309",
		Category:             "Equity",
		RiskLevel:            entities.RiskLevelMedium,
		RiskPercentage:       55,
		MinInvestment:        10000,
		MinReturn:            11,
		MaxReturn:            16,
		CAGR1Y:               16.3,
		CAGR3Y:               17.1,
		CAGR5Y:               15.4,
		SharpeRatio:          1.08,
		TimeHorizon:          "5+ years",
		ExperienceLevel:      "Intermediate",
		AgeRange:             "25-50",
		Goals:                []string{"Wealth Creation"},
		Funds:                []entities.EntityID{"101", "106", "109"},
		Philosophy:           "Hold the strongest trending large and mid caps",
		Rationale:            "Momentum has been a persistent factor premium in Indian equities",
		SuitableFor:          "Investors who can hold through factor drawdowns",
		RebalancingFrequency: "Monthly",
		ExcelFile:            "b14.xlsx",
	},
}

var defaultFunds = []entities.Fund{
	{
		ID: "101", Name: "Axis Bluechip Fund", AMC: "Axis Mutual Fund", FundHouse: "Axis",
		Category: "Equity", SubCategory: "Large Cap", NAV: 58.42,
		Returns1Y: 13.8, Returns3Y: 14.9, Returns5Y: 13.1, AUM: "₹33,450 Cr",
		ExpenseRatio: 0.55, ExitLoad: 1, MinInvestment: 500, Risk: entities.RiskLevelMedium,
		Rating: 4, SharpeRatio: 1.08, StandardDeviation: 12.4, Beta: 0.88,
		TopHoldings: []entities.Holding{
			{Name: "HDFC Bank", Percentage: 9.6},
			{Name: "ICICI Bank", Percentage: 8.2},
			{Name: "Infosys", Percentage: 6.1},
		},
		SectorAllocation: []entities.SectorAllocation{
			{Sector: "Financial Services", Percentage: 34.5},
			{Sector: "Information Technology", Percentage: 14.2},
			{Sector: "Consumer Goods", Percentage: 11.8},
		},
	},
	{
		ID: "102", Name: "Mirae Asset Large Cap Fund", AMC: "Mirae Asset Mutual Fund", FundHouse: "Mirae Asset",
		Category: "Equity", SubCategory: "Large Cap", NAV: 104.37,
		Returns1Y: 14.5, Returns3Y: 15.2, Returns5Y: 14.0, AUM: "₹38,120 Cr",
		ExpenseRatio: 0.54, ExitLoad: 1, MinInvestment: 1000, Risk: entities.RiskLevelMedium,
		Rating: 5, SharpeRatio: 1.15, StandardDeviation: 13.1, Beta: 0.92,
	},
	{
		ID: "103", Name: "SBI Nifty 50 Index Fund", AMC: "SBI Mutual Fund", FundHouse: "SBI",
		Category: "Equity", SubCategory: "Index", NAV: 212.09,
		Returns1Y: 15.1, Returns3Y: 15.7, Returns5Y: 14.6, AUM: "₹9,870 Cr",
		ExpenseRatio: 0.18, ExitLoad: 0, MinInvestment: 500, Risk: entities.RiskLevelMedium,
		Rating: 4, SharpeRatio: 1.02, StandardDeviation: 14.0, Beta: 1.0,
	},
	{
		ID: "104", Name: "ICICI Prudential Dividend Yield Equity Fund", AMC: "ICICI Prudential Mutual Fund", FundHouse: "ICICI Prudential",
		Category: "Equity", SubCategory: "Dividend Yield", NAV: 46.73,
		Returns1Y: 12.2, Returns3Y: 13.4, Returns5Y: 12.1, AUM: "₹4,210 Cr",
		ExpenseRatio: 0.92, ExitLoad: 1, MinInvestment: 1000, Risk: entities.RiskLevelMedium,
		Rating: 4, SharpeRatio: 0.97, StandardDeviation: 11.6, Beta: 0.81,
	},
	{
		ID: "105", Name: "HDFC Balanced Advantage Fund", AMC: "HDFC Mutual Fund", FundHouse: "HDFC",
		Category: "Hybrid", SubCategory: "Balanced Advantage", NAV: 468.15,
		Returns1Y: 11.1, Returns3Y: 12.8, Returns5Y: 11.6, AUM: "₹90,375 Cr",
		ExpenseRatio: 0.78, ExitLoad: 1, MinInvestment: 100, Risk: entities.RiskLevelMedium,
		Rating: 5, SharpeRatio: 1.24, StandardDeviation: 9.2, Beta: 0.67,
	},
	{
		ID: "106", Name: "Tata Digital India Fund", AMC: "Tata Mutual Fund", FundHouse: "Tata",
		Category: "Equity", SubCategory: "Sectoral - Technology", NAV: 49.88,
		Returns1Y: 23.4, Returns3Y: 17.9, Returns5Y: 22.3, AUM: "₹11,480 Cr",
		ExpenseRatio: 0.41, ExitLoad: 0.25, MinInvestment: 5000, Risk: entities.RiskLevelHigh,
		Rating: 4, SharpeRatio: 1.01, StandardDeviation: 19.8, Beta: 0.95,
	},
	{
		ID: "107", Name: "ICICI Prudential Technology Fund", AMC: "ICICI Prudential Mutual Fund", FundHouse: "ICICI Prudential",
		Category: "Equity", SubCategory: "Sectoral - Technology", NAV: 192.61,
		Returns1Y: 21.7, Returns3Y: 18.8, Returns5Y: 24.9, AUM: "₹13,060 Cr",
		ExpenseRatio: 0.96, ExitLoad: 1, MinInvestment: 100, Risk: entities.RiskLevelHigh,
		Rating: 4, SharpeRatio: 1.09, StandardDeviation: 20.5, Beta: 0.97,
	},
	{
		ID: "108", Name: "Aditya Birla Sun Life Short Term Fund", AMC: "Aditya Birla Sun Life Mutual Fund", FundHouse: "Aditya Birla Sun Life",
		Category: "Debt", SubCategory: "Short Duration", NAV: 44.36,
		Returns1Y: 7.4, Returns3Y: 6.2, Returns5Y: 6.8, AUM: "₹7,240 Cr",
		ExpenseRatio: 0.37, ExitLoad: 0, MinInvestment: 1000, Risk: entities.RiskLevelLow,
		Rating: 4, SharpeRatio: 1.46, StandardDeviation: 1.3, Beta: 0.12,
	},
	{
		ID: "109", Name: "Nippon India Power & Infra Fund", AMC: "Nippon India Mutual Fund", FundHouse: "Nippon India",
		Category: "Equity", SubCategory: "Sectoral - Infrastructure", NAV: 331.54,
		Returns1Y: 20.3, Returns3Y: 27.6, Returns5Y: 19.2, AUM: "₹6,820 Cr",
		ExpenseRatio: 1.02, ExitLoad: 1, MinInvestment: 100, Risk: entities.RiskLevelHigh,
		Rating: 3, SharpeRatio: 0.91, StandardDeviation: 18.7, Beta: 1.06,
	},
}

var monthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var nifty50Series = []float64{100, 101.2, 99.8, 102.6, 104.1, 103.5, 106.2, 107.9, 106.4, 109.1, 111.3, 112.8}

var defaultPerformance = map[string]entities.BasketPerformance{
	"basket-1": {
		Basket:  []float64{100, 101.8, 101.1, 103.9, 105.6, 105.2, 108.4, 110.3, 109.5, 112.2, 114.6, 116.1},
		Nifty50: nifty50Series,
		Labels:  monthLabels,
	},
	"basket-2": {
		Basket:  []float64{100, 100.9, 100.6, 102.1, 103.0, 103.4, 104.8, 106.0, 105.9, 107.6, 109.0, 110.2},
		Nifty50: nifty50Series,
		Labels:  monthLabels,
	},
	"basket-3": {
		Basket:  []float64{100, 103.1, 99.2, 105.4, 108.8, 107.1, 112.6, 115.9, 113.0, 118.4, 121.7, 123.9},
		Nifty50: nifty50Series,
		Labels:  monthLabels,
	},
	"basket-4": {
		Basket:  []float64{100, 101.0, 100.4, 102.0, 103.2, 103.0, 104.9, 106.1, 105.6, 107.5, 108.9, 110.0},
		Nifty50: nifty50Series,
		Labels:  monthLabels,
	},
	"basket-5": {
		Basket:  []float64{100, 100.6, 101.2, 101.7, 102.3, 102.9, 103.5, 104.1, 104.6, 105.2, 105.8, 106.4},
		Nifty50: nifty50Series,
		Labels:  monthLabels,
	},
	"basket-6": {
		Basket:  []float64{100, 102.7, 100.1, 104.9, 107.3, 106.0, 110.8, 113.4, 111.2, 115.6, 118.1, 119.6},
		Nifty50: nifty50Series,
		Labels:  monthLabels,
	},
}
