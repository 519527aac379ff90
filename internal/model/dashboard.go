package model

// Derived dashboard views. None of these are persisted.

type CategoryBucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type MonthlyBucket struct {
	Name   string  `json:"name"`
	Sales  float64 `json:"sales"`
	Orders int     `json:"orders"`
}

type TopProduct struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

type DashboardSnapshot struct {
	TotalUsers    int              `json:"totalUsers"`
	TotalOrders   int              `json:"totalOrders"`
	TotalProducts int              `json:"totalProducts"`
	TotalRevenue  float64          `json:"totalRevenue"`
	SalesData     []MonthlyBucket  `json:"salesData"`
	CategoryData  []CategoryBucket `json:"categoryData"`
	TopProducts   []TopProduct     `json:"topProducts"`
	RecentOrders  []RecentOrder    `json:"recentOrders"`
}
