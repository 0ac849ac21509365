package iotesting

// Dataset fixtures. Together they load 2 provinces, 3 cities,
// 3 districts, 5 neighborhoods, 2 universities (one of them misses the
// city Kribi), 2 faculties (the UY1 entry stops at the unknown city
// Bertoua) and 3 of 4 courses (UBDA is not a known university).
const (
	EmergencyYAML = `police: 117
fire: 118
hospitals:
  - name: Hôpital Général de Douala
    phone: 233 37 02 50
`

	ProvincesYAML = `- lib_dep: LITTORAL
  communes:
    - lib_com: DOUALA
      arrondissements:
        - lib_arrond: DOUALA 1ER
          quartiers:
            - lib_quart: AKWA
            - lib_quart: BONANJO
            - lib_quart: DEIDO
        - lib_arrond: DOUALA 4E
          quartiers:
            - lib_quart: BONABERI
- lib_dep: CENTRE
  communes:
    - lib_com: YAOUNDE
      arrondissements:
        - lib_arrond: YAOUNDE 3E
          quartiers:
            - lib_quart: MELEN
    - lib_com: MBALMAYO
`

	UniversitiesYAML = `- id: UDLA
  name: Université de Douala
  address: BP 2701 Douala
  phone: 233 40 11 28
  email: info@univ-douala.cm
  url: https://www.univ-douala.com
  type: public
  cities:
    - Douala
- id: UY1
  name: Université de Yaoundé I
  address: BP 337 Yaoundé
  type: public
  cities:
    - Yaounde
    - Kribi
`

	FacultiesYAML = `- id: UDLA
  faculties:
    - id: FS
      name: Faculté des Sciences
      city: Douala
      fields:
        - Mathématiques
        - Informatique
    - id: FSEGA
      name: Faculté des Sciences Economiques et de Gestion Appliquée
      city: douala
      fields:
        - Economie
- id: UY1
  faculties:
    - id: FMSB
      name: Faculté de Médecine et des Sciences Biomédicales
      city: Bertoua
      fields:
        - Médecine
    - id: FALSH
      name: Faculté des Arts, Lettres et Sciences Humaines
      city: Yaounde
`

	FormationUBDAYAML = `id: UBDA
courses:
  - name: Génie Civil
    yearsofstudy: 5
    fields:
      - Génie Civil
`

	FormationUDLAYAML = `id: UDLA
courses:
  - name: Licence en Informatique
    description: Algorithmique et programmation
    prerequisite: Baccalauréat C, D ou E
    yearsofstudy: 3
    faculty: Faculté des Sciences
    fields:
      - Informatique
    roles:
      - Développeur
      - Analyste
  - name: Licence en Mathématiques
    yearsofstudy: 3
    faculty: Faculté des Sciences
    fields:
      - Mathématiques
`

	FormationUY1YAML = `id: UY1
courses:
  - name: Doctorat en Médecine
    yearsofstudy: 7
    faculty: FMSB
    roles:
      - Médecin
`
)

// Dataset returns all fixtures keyed by their path inside a data
// directory, ready for WriteDataset.
func Dataset() map[string]string {
	return map[string]string{
		"emergency.yml":       EmergencyYAML,
		"faculties.yml":       FacultiesYAML,
		"provinces.yml":       ProvincesYAML,
		"universities.yml":    UniversitiesYAML,
		"formations/ubda.yml": FormationUBDAYAML,
		"formations/udla.yml": FormationUDLAYAML,
		"formations/uy1.yml":  FormationUY1YAML,
	}
}
