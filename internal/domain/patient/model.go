package patient

// Gender values accepted on a patient record.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOthers = "Others"
)

// Patient is the full record shape exposed by the API. BMI and Verdict are
// derived from the primary fields on every read and write path; values
// supplied by a client for them are ignored.
type Patient struct {
	ID     string  `json:"id" validate:"required"`
	Name   string  `json:"name" validate:"required"`
	City   string  `json:"city" validate:"required"`
	Age    int     `json:"age" validate:"required,gt=0,lt=120"`
	Gender string  `json:"gender" validate:"required,oneof=Male Female Others"`
	Height float64 `json:"height" validate:"required,gt=0"` // meters
	Weight float64 `json:"weight" validate:"required,gt=0"` // kg

	BMI     float64 `json:"bmi"`
	Verdict string  `json:"verdict"`
}

// Derive recomputes the record's derived fields from its primary fields.
func (p *Patient) Derive() {
	p.BMI = BMI(p.Weight, p.Height)
	p.Verdict = VerdictFor(p.BMI)
}

// Stored returns the persisted form of the record: primary fields only.
// The id is the store key and derived fields are recomputed on read, so
// neither is written to the store.
func (p *Patient) Stored() StoredPatient {
	return StoredPatient{
		Name:   p.Name,
		City:   p.City,
		Age:    p.Age,
		Gender: p.Gender,
		Height: p.Height,
		Weight: p.Weight,
	}
}

// StoredPatient is the value persisted in the document store under the
// record's id.
type StoredPatient struct {
	Name   string  `json:"name"`
	City   string  `json:"city"`
	Age    int     `json:"age"`
	Gender string  `json:"gender"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

// Record rehydrates a full Patient from a store key and its value,
// including derived fields.
func (sp StoredPatient) Record(id string) Patient {
	p := Patient{
		ID:     id,
		Name:   sp.Name,
		City:   sp.City,
		Age:    sp.Age,
		Gender: sp.Gender,
		Height: sp.Height,
		Weight: sp.Weight,
	}
	p.Derive()
	return p
}

// Update is a partial patient payload. Nil fields mean "no change"; the
// merged record is re-validated as a whole before it is persisted.
type Update struct {
	Name   *string  `json:"name"`
	City   *string  `json:"city"`
	Age    *int     `json:"age"`
	Gender *string  `json:"gender"`
	Height *float64 `json:"height"`
	Weight *float64 `json:"weight"`
}

// Apply overlays the update's present fields onto sp and returns the
// merged value.
func (u Update) Apply(sp StoredPatient) StoredPatient {
	if u.Name != nil {
		sp.Name = *u.Name
	}
	if u.City != nil {
		sp.City = *u.City
	}
	if u.Age != nil {
		sp.Age = *u.Age
	}
	if u.Gender != nil {
		sp.Gender = *u.Gender
	}
	if u.Height != nil {
		sp.Height = *u.Height
	}
	if u.Weight != nil {
		sp.Weight = *u.Weight
	}
	return sp
}
