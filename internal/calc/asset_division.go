package calc

const (
	recDebtAllocation      = "Consider debt allocation strategy"
	recSeparateDisparity   = "Significant separate property disparity may affect maintenance"
	separateDisparityRatio = 2
)

type AssetInput struct {
	MaritalAssets     float64
	MaritalDebts      float64
	SeparatePropertyA float64
	SeparatePropertyB float64
	MaintenanceFactor float64
}

type PartyAmounts struct {
	PartyA float64 `json:"partyA"`
	PartyB float64 `json:"partyB"`
}

type AssetDivisionResult struct {
	NetMaritalEstate      float64      `json:"netMaritalEstate"`
	EquitableDistribution PartyAmounts `json:"equitableDistribution"`
	WithMaintenance       PartyAmounts `json:"withMaintenance"`
	Recommendations       []string     `json:"recommendations"`
	Disclaimer            string       `json:"disclaimer"`
}

// AssetDivision splits the net marital estate equally and then shifts
// netMaritalEstate*MaintenanceFactor from party A to party B. A negative
// estate is divided as is.
//
// The maintenance split gives party B the rounding residue, so both sides
// always add up to the rounded estate.
func (c *Calculator) AssetDivision(in AssetInput) AssetDivisionResult {
	net := in.MaritalAssets - in.MaritalDebts
	base := net / 2
	shift := net * in.MaintenanceFactor

	recs := []string{}
	if net < 0 {
		recs = append(recs, recDebtAllocation)
	}
	// Only a party A surplus is flagged; B > 2A is not checked.
	if in.SeparatePropertyA > in.SeparatePropertyB*separateDisparityRatio {
		recs = append(recs, recSeparateDisparity)
	}

	// B takes the residue rather than round(base + shift), which can exceed
	// round(net) by one for odd estates (net 3 gives {2,1}, not {2,2}).
	partyA := round(base - shift)
	return AssetDivisionResult{
		NetMaritalEstate:      net,
		EquitableDistribution: PartyAmounts{PartyA: round(base), PartyB: round(base)},
		WithMaintenance:       PartyAmounts{PartyA: partyA, PartyB: round(net) - partyA},
		Recommendations:       recs,
		Disclaimer:            Disclaimer,
	}
}
