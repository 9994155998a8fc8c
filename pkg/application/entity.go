package application

// Form carries the candidate-supplied fields for one submit attempt.
// Optional numerics stay nil when the candidate left them blank; zero is a
// meaningful value and is never assumed.
type Form struct {
	Name             string
	Email            string
	Phone            string
	NoticePeriodDays *int
	CurrentSalary    *float64
	ExpectedSalary   *float64
}

// Resume is the uploaded attachment. ContentType is the declared type from
// the upload, not sniffed from the bytes.
type Resume struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}
