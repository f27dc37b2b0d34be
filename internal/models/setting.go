package models

// Setting is a key/value pair for application state that is not a resource.
type Setting struct {
	Key   string `gorm:"primaryKey"`
	Value string
	Timestamps
}

func (Setting) Self() string {
	return "Setting"
}

// SettingRepaymentPassword holds the bcrypt hash of the repayment password.
const SettingRepaymentPassword = "repayment_password"
