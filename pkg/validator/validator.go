package validator

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	translations "github.com/go-playground/validator/v10/translations/en"
	"go.uber.org/multierr"
)

type Validator interface {
	ValidateStruct(obj interface{}) error
	Engine() interface{}
}

// FieldErrors 字段名到翻译后的错误信息
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, f[k])
	}
	return strings.Join(msgs, "; ")
}

// New validator,与gin的binding标签兼容
func New() (*defaultValidator, error) {
	v := &defaultValidator{Validate: validator.New()}
	v.Validate.SetTagName("binding")
	// 使用json/form标签名作为字段名
	v.Validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})
	v.translator, _ = ut.New(en.New()).GetTranslator("en")
	if err := translations.RegisterDefaultTranslations(v.Validate, v.translator); err != nil {
		return nil, err
	}
	return v, nil
}

type defaultValidator struct {
	Validate   *validator.Validate
	translator ut.Translator
}

// ValidateStruct receives any kind of type, but only performed struct or pointer to struct type.
func (v *defaultValidator) ValidateStruct(obj interface{}) error {
	err := v.defaultValidateStruct(obj)
	if err == nil {
		return nil
	}
	return v.Translate(err)
}

// Translate 将validator.ValidationErrors转换为FieldErrors
func (v *defaultValidator) Translate(err error) error {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}
	fields := make(FieldErrors, len(vErrs))
	for _, fe := range vErrs {
		fields[fe.Field()] = fe.Translate(v.translator)
	}
	return fields
}

// Engine returns the underlying validator engine which powers the default
// Validator instance. This is useful if you want to register custom validations
// or struct level validations.
func (v *defaultValidator) Engine() interface{} {
	return v.Validate
}

func (v *defaultValidator) defaultValidateStruct(obj interface{}) error {
	if obj == nil {
		return nil
	}
	value := reflect.ValueOf(obj)
	switch value.Kind() { // nolint:exhaustive
	case reflect.Ptr:
		if value.IsNil() {
			return nil
		}
		return v.defaultValidateStruct(value.Elem().Interface())
	case reflect.Struct:
		return v.Validate.Struct(obj)
	case reflect.Slice, reflect.Array:
		count := value.Len()
		var errs error
		for i := 0; i < count; i++ {
			errs = multierr.Append(errs, v.ValidateStruct(value.Index(i).Interface()))
		}
		return errs
	default:
		return nil
	}
}

// RegisterTranslation 为自定义校验注册英文提示
func (v *defaultValidator) RegisterTranslation(tag, text string) error {
	return v.Validate.RegisterTranslation(tag, v.translator,
		func(trans ut.Translator) error {
			return trans.Add(tag, text, true)
		},
		func(trans ut.Translator, fe validator.FieldError) string {
			msg, _ := trans.T(tag, fe.Field())
			return msg
		})
}

func RegisterValidation(v Validator, tag string, fn validator.Func, callValidationEvenIfNull ...bool) error {
	validate, ok := v.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return validate.RegisterValidation(tag, fn, callValidationEvenIfNull...)
}
