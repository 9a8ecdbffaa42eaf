package create_visit_reservation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Тексты ошибок валидации для пользователя
const (
	msgFieldRequired = "필수 입력 항목입니다."
	msgNameTooLong   = "이름은 50자 이내로 입력해주세요."
	msgMemoTooLong   = "메모는 500자 이내로 입력해주세요."
	msgInvalidPhone  = "올바른 휴대폰 번호를 입력해주세요."
	msgInvalidValue  = "올바르지 않은 값입니다."
)

// koreanPhonePattern мобильные номера 01X с дефисами или без
var koreanPhonePattern = regexp.MustCompile(`^01[016789]-?\d{3,4}-?\d{4}$`)

// newValidator создает валидатор с правилом korean_phone
func newValidator() *validator.Validate {
	v := validator.New()
	// Ошибка регистрации возможна только для пустого имени правила
	_ = v.RegisterValidation("korean_phone", func(fl validator.FieldLevel) bool {
		return koreanPhonePattern.MatchString(fl.Field().String())
	})
	return v
}

// validateRequest валидирует форму и собирает ошибки по полям
func validateRequest(v *validator.Validate, req *Request) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Fields: []FieldError{{Field: "request", Message: msgInvalidValue}}}
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(errs))}
	for _, fe := range errs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fieldName(fe.Field()),
			Message: messageFor(fe),
		})
	}
	return out
}

// fieldName переводит имя поля структуры в snake_case контракта API
func fieldName(field string) string {
	switch field {
	case "EventUUID":
		return "event_uuid"
	case "DonghoID":
		return "dongho_id"
	case "Date":
		return "reservation_date"
	case "Time":
		return "reservation_time"
	case "WriterName":
		return "writer_name"
	case "WriterPhone":
		return "writer_phone"
	case "Memo":
		return "memo"
	default:
		return field
	}
}

// messageFor подбирает текст ошибки по нарушенному правилу
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgFieldRequired
	case "korean_phone":
		return msgInvalidPhone
	case "max":
		if fe.Field() == "Memo" {
			return msgMemoTooLong
		}
		return msgNameTooLong
	default:
		return msgInvalidValue
	}
}
