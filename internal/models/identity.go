package models

import "strings"

// OnlyDigits strips punctuation from a CPF, CNPJ or CEP
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSame(d []int) bool {
	for _, v := range d[1:] {
		if v != d[0] {
			return false
		}
	}
	return true
}

func checkDigit(d []int, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += d[i] * w
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

func toInts(digits string) []int {
	d := make([]int, len(digits))
	for i, r := range digits {
		d[i] = int(r - '0')
	}
	return d
}

// ValidCPF checks length and both verification digits of a CPF, with or
// without punctuation. Repeated-digit numbers such as 111.111.111-11 fail.
func ValidCPF(cpf string) bool {
	digits := OnlyDigits(cpf)
	if len(digits) != 11 {
		return false
	}
	d := toInts(digits)
	if allSame(d) {
		return false
	}
	if checkDigit(d, []int{10, 9, 8, 7, 6, 5, 4, 3, 2}) != d[9] {
		return false
	}
	return checkDigit(d, []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}) == d[10]
}

// ValidCNPJ checks length and both verification digits of a CNPJ
func ValidCNPJ(cnpj string) bool {
	digits := OnlyDigits(cnpj)
	if len(digits) != 14 {
		return false
	}
	d := toInts(digits)
	if allSame(d) {
		return false
	}
	if checkDigit(d, []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}) != d[12] {
		return false
	}
	return checkDigit(d, []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}) == d[13]
}

// FormatCPF renders 11 digits as 000.000.000-00; other input is returned as is
func FormatCPF(cpf string) string {
	d := OnlyDigits(cpf)
	if len(d) != 11 {
		return cpf
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// FormatCNPJ renders 14 digits as 00.000.000/0000-00
func FormatCNPJ(cnpj string) string {
	d := OnlyDigits(cnpj)
	if len(d) != 14 {
		return cnpj
	}
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}
