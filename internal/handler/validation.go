package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/user/movieapi/internal/model"
)

// fieldErrors 字段 -> 错误信息列表
type fieldErrors map[string][]string

// 自定义提示，键为 字段.规则
var customMessages = map[string]string{
	"title.required": "Name of the movie is required",
}

var registerOnce sync.Once

// RegisterValidators 注册 Date 类型及字段命名规则，可重复调用
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return fld.Name
		})

		// required 校验 Date 内部的 time.Time
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(model.Date); ok {
				return d.Time
			}
			return nil
		}, model.Date{})
	})
}

// validationErrors 将绑定错误转换为按字段分组的提示
func validationErrors(err error) fieldErrors {
	out := fieldErrors{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[fe.Field()] = append(out[fe.Field()], fieldMessage(fe))
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "$"
		}
		out[field] = append(out[field], fmt.Sprintf("The JSON value could not be converted to %s.", typeErr.Type))
		return out
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		out["$"] = append(out["$"], fmt.Sprintf("The value '%s' is not valid.", numErr.Num))
		return out
	}

	out["$"] = append(out["$"], "The request body could not be parsed.")
	return out
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := customMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.StructField())
	case "min":
		return fmt.Sprintf("The field %s must be at least %s.", fe.StructField(), fe.Param())
	default:
		return fmt.Sprintf("The field %s is invalid.", fe.StructField())
	}
}
