package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/AlecAivazis/survey/v2"

	"github.com/allen13/tegridy-cards/pkg/cardnumber"
	"github.com/allen13/tegridy-cards/pkg/cvv"
	"github.com/allen13/tegridy-cards/pkg/expiry"
	"github.com/allen13/tegridy-cards/pkg/form"
	"github.com/allen13/tegridy-cards/pkg/format"
	"github.com/allen13/tegridy-cards/pkg/issuers"
)

func main() {
	catalog := issuers.Default()
	numbers := cardnumber.NewValidator(catalog)
	expiries := expiry.NewValidator()
	formatter := format.New(catalog)

	fmt.Println("=== Card Entry Example ===")

	values := form.Values{}

	ask("Card number", func(ans string) error {
		if !numbers.Verify(ans, 0).Valid {
			return errors.New("not a valid card number")
		}
		values.Number = ans
		return nil
	})

	ask("Expiry (MM/YY)", func(ans string) error {
		if !expiries.Date(ans).Valid {
			return errors.New("not a valid expiration date")
		}
		values.Expiry = ans
		return nil
	})

	// The security-code label and size follow the issuer we just resolved.
	code := issuers.Fallback().Code
	if resolved := numbers.Verify(values.Number, 0).Issuer; resolved != nil {
		code = resolved.Code
	}
	ask(code.Name, func(ans string) error {
		if !cvv.Verify(ans, code.Sizes...).Valid {
			return fmt.Errorf("%s must be %v digits", code.Name, code.Sizes)
		}
		values.CVC = ans
		return nil
	})

	ask("Name on card", func(ans string) error {
		if ans == "" {
			return errors.New("name is required")
		}
		values.Name = ans
		return nil
	})

	ask("Postal code", func(ans string) error {
		values.PostalCode = ans
		return nil
	})

	aggregator := form.New(form.Config{Catalog: catalog})
	result := aggregator.Validate(values,
		form.FieldNumber, form.FieldExpiry, form.FieldCVC, form.FieldName)

	digits := digitsOf(values.Number)

	fmt.Println("\n=== Result ===")
	fmt.Printf("Issuer:  %s\n", result.Issuer)
	fmt.Printf("Number:  %s\n", formatter.Number(values.Number))
	fmt.Printf("Masked:  %s\n", format.Mask(digits))
	fmt.Printf("Expiry:  %s\n", formatter.Expiry(values.Expiry))
	fmt.Printf("Postal:  %s\n", formatter.PostalCode(values.PostalCode))
	for field, status := range result.Statuses {
		fmt.Printf("  %-10s %s\n", field, status)
	}
	if result.Valid {
		fmt.Println("Form is complete.")
	} else {
		fmt.Println("Form is incomplete.")
	}

	// The engine never stores anything; a caller that wants a saved-card
	// summary keeps only the non-sensitive parts.
	fmt.Printf("Summary for storage: %s ending in %s\n",
		result.Issuer, format.Last4(digits))
}

// ask prompts until check accepts the answer.
func ask(message string, check func(string) error) {
	prompt := &survey.Input{Message: message + ":"}
	var out string
	err := survey.AskOne(prompt, &out, survey.WithValidator(func(ans interface{}) error {
		s, _ := ans.(string)
		return check(s)
	}))
	if err != nil {
		log.Fatalf("prompt failed: %v", err)
	}
}

func digitsOf(raw string) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			out = append(out, raw[i])
		}
	}
	return string(out)
}
