package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

// レスポンスに出すフィールド名 (json タグ → 表示名)
var fieldNameTranslations = map[string]string{
	"first_name":       "First name",
	"last_name":        "Last name",
	"email":            "Email",
	"password":         "Password",
	"confirm_password": "Password confirmation",
	"name":             "Category name",
	"maori":            "Māori",
	"english":          "English",
	"definition":       "Definition",
	"category_id":      "Category",
}

func displayName(field string) string {
	if name, ok := fieldNameTranslations[field]; ok {
		return name
	}
	return field
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得する
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	var found bool
	Trans, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}

	if err := en_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	register := func(tag, msg string, withParam bool) {
		err := Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			var t string
			if withParam {
				t, _ = ut.T(tag, displayName(fe.Field()), fe.Param())
			} else {
				t, _ = ut.T(tag, displayName(fe.Field()))
			}
			return t
		})
		if err != nil {
			log.Fatal(err)
		}
	}

	register("required", "{0} is required", false)
	register("email", "{0} must be a valid email address", false)
	register("max", "{0} must be at most {1} characters", true)
}
