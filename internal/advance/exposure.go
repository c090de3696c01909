package advance

import "sort"

// MaxExposurePercent is the share of the base salary at which an employee
// is considered at their advance ceiling.
const MaxExposurePercent = 80.0

type Exposure struct {
	EmployeeID     string
	BaseSalary     int64
	TotalValidated int64
	Remaining      int64
	// Percentage is meaningless when Excluded is set.
	Percentage float64
	AtMaximum  bool
	Excluded   bool
}

// ComputeExposure relates validated advances to the base salary. A zero or
// negative base excludes the employee instead of dividing by it.
func ComputeExposure(employeeID string, baseSalary, totalValidated int64) Exposure {
	e := Exposure{
		EmployeeID:     employeeID,
		BaseSalary:     baseSalary,
		TotalValidated: totalValidated,
		Remaining:      baseSalary - totalValidated,
	}
	if baseSalary <= 0 {
		e.Excluded = true
		return e
	}
	e.Percentage = float64(totalValidated) / float64(baseSalary) * 100
	e.AtMaximum = e.Percentage >= MaxExposurePercent
	return e
}

// RankExposure drops excluded employees and orders the rest by descending
// percentage, then employee id.
func RankExposure(in []Exposure) []Exposure {
	out := make([]Exposure, 0, len(in))
	for _, e := range in {
		if !e.Excluded {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Percentage != out[j].Percentage {
			return out[i].Percentage > out[j].Percentage
		}
		return out[i].EmployeeID < out[j].EmployeeID
	})
	return out
}
