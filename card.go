/*
Copyright 2025 Pawprint Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package pawprint

import "strings"

// cardMethods are the payment methods that carry a card number worth
// validating. Every other method (paypal, wire transfer, direct debit)
// bypasses card validation entirely.
var cardMethods = map[string]bool{
	"card":           true,
	"carte_bancaire": true,
}

// deniedCards simulates the issuer-side deny list: test numbers for
// stolen, expired and error-prone cards that must never reach the
// gateway. Matched after cleaning, before the checksum.
var deniedCards = map[string]bool{
	"4000000000000002": true,
	"4000000000000051": true,
	"4000000000000069": true,
	"4000000000000119": true,
	"4000000000009995": true,
}

// CardValidation is the outcome of validating a card number. Reason is
// empty when Valid is true.
type CardValidation struct {
	Valid  bool
	Reason string
}

// IsCardMethod reports whether the payment method is card-based.
func IsCardMethod(method string) bool {
	return cardMethods[strings.ToLower(strings.TrimSpace(method))]
}

// ValidateCard checks a card number's well-formedness: strips spaces and
// hyphens, requires 13-19 decimal digits, rejects deny-listed numbers,
// then applies the Luhn checksum. It never talks to the gateway; a card
// that fails here is rejected before any durable side effect.
func ValidateCard(cardNumber string) CardValidation {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(cardNumber)

	if len(cleaned) < 13 || len(cleaned) > 19 || !isDigits(cleaned) {
		return CardValidation{Reason: "invalid card number format"}
	}

	if deniedCards[cleaned] {
		return CardValidation{Reason: "card declined by the bank"}
	}

	if !luhnValid(cleaned) {
		return CardValidation{Reason: "card number failed checksum validation"}
	}

	return CardValidation{Valid: true}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// luhnValid applies the mod-10 checksum: right to left, double every
// second digit, subtract 9 from doubled values above 9, sum, valid iff
// the sum is divisible by 10.
func luhnValid(s string) bool {
	sum := 0
	double := false
	for i := len(s) - 1; i >= 0; i-- {
		d := int(s[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
