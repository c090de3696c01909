package employee

import (
	"sort"
	"strings"
)

const UnassignedDepartment = "Non assigné"

var departmentOrder = []string{
	"serveur",
	"comi_serveur",
	"bar",
	"chef_cuisine",
	"cuisine",
	"patisserie",
	"pizzaria",
	"chicha",
	"menage_matin",
	"menage_soir",
	"gestion_stock",
	"responsable",
	"securite",
	"non assigné",
}

func departmentRank(dept string) int {
	d := strings.ToLower(strings.TrimSpace(dept))
	if d == "" {
		d = "non assigné"
	}
	for i, name := range departmentOrder {
		if name == d {
			return i
		}
	}
	return len(departmentOrder)
}

// SortByDepartment orders employees by the floor's department order, then
// by name. Unknown departments go last, alphabetically.
func SortByDepartment(emps []Employee) {
	sort.SliceStable(emps, func(i, j int) bool {
		ri, rj := departmentRank(emps[i].Department), departmentRank(emps[j].Department)
		if ri != rj {
			return ri < rj
		}
		if ri == len(departmentOrder) && emps[i].Department != emps[j].Department {
			return strings.ToLower(emps[i].Department) < strings.ToLower(emps[j].Department)
		}
		return strings.ToLower(emps[i].DisplayName()) < strings.ToLower(emps[j].DisplayName())
	})
}
