package dto

type CreateStudentRequest struct {
	NIS       string  `json:"nis"        validate:"required,min=1,max=30"`
	BarcodeID string  `json:"barcode_id" validate:"required,min=1,max=64"`
	Name      string  `json:"name"       validate:"required,min=2,max=100"`
	Gender    string  `json:"gender"     validate:"omitempty,oneof=L P"`
	Address   *string `json:"address"`
	ClassID   *string `json:"class_id"   validate:"omitempty,uuid"`
	ParentID  *string `json:"parent_id"  validate:"omitempty,uuid"`
	UserID    *string `json:"user_id"    validate:"omitempty,uuid"`
}

type UpdateStudentRequest struct {
	NIS       string  `json:"nis"        validate:"omitempty,min=1,max=30"`
	BarcodeID string  `json:"barcode_id" validate:"omitempty,min=1,max=64"`
	Name      string  `json:"name"       validate:"omitempty,min=2,max=100"`
	Gender    string  `json:"gender"     validate:"omitempty,oneof=L P"`
	Address   *string `json:"address"`
	ClassID   *string `json:"class_id"   validate:"omitempty,uuid"`
	ParentID  *string `json:"parent_id"  validate:"omitempty,uuid"`
}

type StudentResponse struct {
	ID        string  `json:"id"`
	NIS       string  `json:"nis"`
	BarcodeID string  `json:"barcode_id"`
	Name      string  `json:"name"`
	Gender    string  `json:"gender,omitempty"`
	Address   *string `json:"address,omitempty"`
	ClassID   *string `json:"class_id,omitempty"`
	ClassName string  `json:"class_name,omitempty"`
	ParentID  *string `json:"parent_id,omitempty"`
}

// StudentFilter narrows list queries. Q matches name or NIS substrings.
type StudentFilter struct {
	Q       string
	ClassID *string
}
