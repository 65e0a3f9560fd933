package model

import (
	"time"

	"github.com/google/uuid"
)

// SustainabilitySnapshot is a derived view of network energy use for one
// observation window. Snapshots are never mutated after construction; a new
// one is produced per window.
type SustainabilitySnapshot struct {
	ID              uuid.UUID `json:"id"`
	NetworkHashrate float64   `json:"network_hashrate"`
	TxCount24h      uint64    `json:"tx_count_24h"`
	// PowerKW is the estimated aggregate draw of the mining fleet.
	PowerKW        float64 `json:"power_kw"`
	DailyEnergyKWh float64 `json:"daily_energy_kwh"`
	DailyCarbonKg  float64 `json:"daily_carbon_kg"`
	EnergyPerTxWh  float64 `json:"energy_per_tx_wh"`
	CarbonPerTxG   float64 `json:"carbon_per_tx_g"`
	// Efficiency sub-scores on a 0-100 scale.
	StorageEfficiency     float64   `json:"storage_efficiency"`
	NetworkEfficiency     float64   `json:"network_efficiency"`
	ComputationEfficiency float64   `json:"computation_efficiency"`
	OverallScore          float64   `json:"overall_score"`
	Grade                 string    `json:"grade"`
	Timestamp             time.Time `json:"timestamp"`
}
