package domain

import "github.com/shopspring/decimal"

// DailySalesStat não é persistido; é derivado das vendas de um dono
type DailySalesStat struct {
	Date        string          `json:"date"`
	TotalSales  int             `json:"totalSales"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type CustomerStat struct {
	CustomerID    string          `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	TotalVolume   decimal.Decimal `json:"totalVolume"`
	AverageValue  decimal.Decimal `json:"averageValue"`
	TotalSales    int             `json:"totalSales"`
	ExclusiveDays int             `json:"exclusiveDays"`
}

// TopCustomersReport pode apontar o mesmo CustomerStat em mais de um destaque
type TopCustomersReport struct {
	HighestVolume  *CustomerStat `json:"highestVolume"`
	HighestAverage *CustomerStat `json:"highestAverage"`
	MostFrequent   *CustomerStat `json:"mostFrequent"`
	TotalCustomers int           `json:"totalCustomers"`
}
