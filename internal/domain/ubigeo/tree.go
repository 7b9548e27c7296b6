// Package ubigeo reshapes Peru's flat administrative-division dataset into
// the department → province → district tree the checkout address form needs.
package ubigeo

import "sort"

// placeholderCode marks "this row names the level above" in the dataset:
// a row with provincia "00" and distrito "00" names a department, a row
// with only distrito "00" names a province.
const placeholderCode = "00"

type Record struct {
	Departamento string
	Provincia    string
	Distrito     string
	Nombre       string
}

type Province struct {
	Provincia string   `json:"provincia"`
	Distritos []string `json:"distritos"`
}

type Department struct {
	Departamento string     `json:"departamento"`
	Provincias   []Province `json:"provincias"`
}

type provinceNode struct {
	name      string
	districts map[string]struct{}
}

type departmentNode struct {
	name      string
	provinces map[string]*provinceNode
}

// BuildTree groups flat ubigeo records into a three-level tree. Records
// missing any code or the name are dropped silently. District names are
// deduplicated and every level is sorted alphabetically.
func BuildTree(records []Record) []Department {
	departments := make(map[string]*departmentNode)

	for _, r := range records {
		if r.Departamento == "" || r.Provincia == "" || r.Distrito == "" || r.Nombre == "" {
			continue
		}

		dep, ok := departments[r.Departamento]
		if !ok {
			dep = &departmentNode{provinces: make(map[string]*provinceNode)}
			departments[r.Departamento] = dep
		}

		if r.Provincia == placeholderCode && r.Distrito == placeholderCode {
			dep.name = r.Nombre
			continue
		}

		prov, ok := dep.provinces[r.Provincia]
		if !ok {
			prov = &provinceNode{districts: make(map[string]struct{})}
			dep.provinces[r.Provincia] = prov
		}

		if r.Distrito == placeholderCode {
			prov.name = r.Nombre
			continue
		}

		prov.districts[r.Nombre] = struct{}{}
	}

	out := make([]Department, 0, len(departments))
	for _, dep := range departments {
		if dep.name == "" {
			continue
		}

		provinces := make([]Province, 0, len(dep.provinces))
		for _, prov := range dep.provinces {
			if prov.name == "" {
				continue
			}

			districts := make([]string, 0, len(prov.districts))
			for d := range prov.districts {
				districts = append(districts, d)
			}
			sort.Strings(districts)

			provinces = append(provinces, Province{Provincia: prov.name, Distritos: districts})
		}
		sort.Slice(provinces, func(i, j int) bool { return provinces[i].Provincia < provinces[j].Provincia })

		out = append(out, Department{Departamento: dep.name, Provincias: provinces})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Departamento < out[j].Departamento })

	return out
}
