package main

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion. Install with
// COMP_INSTALL=1 familaw-calc.
func completion() *complete.Command {
	supportFlags := map[string]complete.Predictor{
		"income-a":      predict.Something,
		"income-b":      predict.Something,
		"children":      predict.Set{"1", "2", "3", "4", "5", "6"},
		"overnights-a":  predict.Something,
		"overnights-b":  predict.Something,
		"medical":       predict.Something,
		"expenses":      predict.Something,
		"education":     predict.Something,
		"other-support": predict.Something,
	}
	worksheetFlags := map[string]complete.Predictor{
		"plain": predict.Nothing,
		"html":  predict.Nothing,
	}
	for k, v := range supportFlags {
		worksheetFlags[k] = v
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"rules":      predict.Files("*"),
			"rules-url":  predict.Something,
			"rules-path": predict.Something,
		},
		Sub: map[string]*complete.Command{
			"child-support": {Flags: supportFlags},
			"worksheet":     {Flags: worksheetFlags},
			"parenting-time": {Flags: map[string]complete.Predictor{
				"weekdays":           predict.Set{"0", "1", "2", "3", "4", "5"},
				"weekends":           predict.Set{"0", "1", "2"},
				"holidays":           predict.Something,
				"summer-weeks":       predict.Something,
				"spring-break":       predict.Nothing,
				"fall-break":         predict.Nothing,
				"winter-alternating": predict.Nothing,
			}},
			"asset-division": {Flags: map[string]complete.Predictor{
				"assets":      predict.Something,
				"debts":       predict.Something,
				"separate-a":  predict.Something,
				"separate-b":  predict.Something,
				"maintenance": predict.Something,
			}},
			"rules": {Flags: map[string]complete.Predictor{
				"md":    predict.Nothing,
				"plain": predict.Nothing,
			}},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}
}
