// Package sustainability derives network energy and carbon estimates from
// raw chain observables. The whole pipeline is a pure computation: the same
// inputs always produce the same figures and grade.
package sustainability

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/verdantchain/explorer-backend/internal/model"
)

// ErrDivisionUndefined reports a zero 24h throughput, for which per-tx
// figures are undefined. Callers get a typed error instead of Inf/NaN.
var ErrDivisionUndefined = errors.New("per-transaction metrics undefined for zero throughput")

const (
	// referenceUnitHashrate is the hashrate of the reference mining rig used
	// to estimate fleet size, in hashes per second (100 TH/s class).
	referenceUnitHashrate = 100e12
	// referenceUnitPowerKW is the wall draw of the reference rig.
	referenceUnitPowerKW = 3.0
	// gridEmissionFactor is kg CO2 per kWh, global grid average.
	gridEmissionFactor = 0.475
)

// Overall score weights for the efficiency sub-scores.
const (
	storageWeight     = 0.3
	networkWeight     = 0.3
	computationWeight = 0.4
)

// Grade maps energy-per-transaction (Wh) to a letter grade.
func Grade(energyPerTxWh float64) string {
	switch {
	case energyPerTxWh < 100:
		return "A+"
	case energyPerTxWh < 200:
		return "A"
	case energyPerTxWh < 500:
		return "B"
	case energyPerTxWh < 1000:
		return "C"
	default:
		return "D"
	}
}

// Compute derives a sustainability snapshot from the raw observables for one
// observation window ending at now.
func Compute(inputs model.SustainabilityInputs, now time.Time) (*model.SustainabilitySnapshot, error) {
	if inputs.TxCount24h == 0 {
		return nil, fmt.Errorf("%w: tx count is zero", ErrDivisionUndefined)
	}
	if inputs.NetworkHashrate < 0 {
		return nil, fmt.Errorf("negative network hashrate %f", inputs.NetworkHashrate)
	}

	estimatedMiners := inputs.NetworkHashrate / referenceUnitHashrate
	powerKW := estimatedMiners * referenceUnitPowerKW
	dailyEnergyKWh := powerKW * 24
	dailyCarbonKg := dailyEnergyKWh * gridEmissionFactor
	txCount := float64(inputs.TxCount24h)
	energyPerTxWh := dailyEnergyKWh * 1000 / txCount
	carbonPerTxG := dailyCarbonKg * 1000 / txCount

	storage := efficiencyScore(dailyEnergyKWh / 10000)
	network := efficiencyScore(carbonPerTxG / 10)
	computation := efficiencyScore(energyPerTxWh / 20)
	overall := storage*storageWeight + network*networkWeight + computation*computationWeight

	return &model.SustainabilitySnapshot{
		ID:                    uuid.New(),
		NetworkHashrate:       inputs.NetworkHashrate,
		TxCount24h:            inputs.TxCount24h,
		PowerKW:               powerKW,
		DailyEnergyKWh:        dailyEnergyKWh,
		DailyCarbonKg:         dailyCarbonKg,
		EnergyPerTxWh:         energyPerTxWh,
		CarbonPerTxG:          carbonPerTxG,
		StorageEfficiency:     storage,
		NetworkEfficiency:     network,
		ComputationEfficiency: computation,
		OverallScore:          overall,
		Grade:                 Grade(energyPerTxWh),
		Timestamp:             now.UTC(),
	}, nil
}

// efficiencyScore maps a normalized cost figure onto a 0-100 scale where
// zero cost scores 100.
func efficiencyScore(cost float64) float64 {
	score := 100 - cost
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
