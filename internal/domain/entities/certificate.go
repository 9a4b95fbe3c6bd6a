package entities

import "github.com/shopspring/decimal"

// Certificate arithmetic for contractor valuations. All results are rounded
// to 2 decimal places, the minor unit of every currency the platform trades
// in.

// ComputeGrossValuation sums completed work, materials on site and approved
// variations (omissions negative). All amounts must share one currency.
func ComputeGrossValuation(work []ValuationWorkItem, materials []MaterialOnSite, variations []ValuationVariation, currency string) (MonetaryAmount, error) {
	gross := MonetaryAmount{Amount: decimal.Zero, Currency: currency}
	var err error
	for _, w := range work {
		if gross, err = gross.Add(w.Amount); err != nil {
			return MonetaryAmount{}, err
		}
	}
	for _, m := range materials {
		if gross, err = gross.Add(m.Value); err != nil {
			return MonetaryAmount{}, err
		}
	}
	for _, v := range variations {
		if !v.Approved {
			continue
		}
		switch v.Type {
		case VariationOmission:
			gross, err = gross.Sub(v.Amount)
		default:
			gross, err = gross.Add(v.Amount)
		}
		if err != nil {
			return MonetaryAmount{}, err
		}
	}
	return gross, nil
}

// ComputeRetention returns round(gross * percentage / 100).
func ComputeRetention(gross MonetaryAmount, retentionPercentage decimal.Decimal) MonetaryAmount {
	amt := gross.Amount.Mul(retentionPercentage).Div(decimal.NewFromInt(100)).Round(2)
	return MonetaryAmount{Amount: amt, Currency: gross.Currency}
}

// ComputeNetAmount returns (gross - previousCertificates) - retention.
func ComputeNetAmount(gross, previousCertificates, retention MonetaryAmount) (MonetaryAmount, error) {
	net, err := gross.Sub(previousCertificates)
	if err != nil {
		return MonetaryAmount{}, err
	}
	return net.Sub(retention)
}
