// Package io reads Intcode program images from text, and connects running
// machines to byte streams.
package io

import (
	"io"
	"strconv"
	"strings"
)

// ReadImage parses a program image of comma separated decimal integers.
// Surrounding whitespace, including the trailing newline, is ignored.
func ReadImage(in io.Reader) (image []int, err error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return
	}

	return ParseImage(string(data))
}

// ParseImage parses a program image from a string.
func ParseImage(text string) (image []int, err error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		err = ErrImageEmpty
		return
	}

	words := strings.Split(text, ",")
	image = make([]int, 0, len(words))
	for _, word := range words {
		word = strings.TrimSpace(word)
		var value int
		value, err = strconv.Atoi(word)
		if err != nil {
			image = nil
			err = ErrParseNumber(word)
			return
		}
		image = append(image, value)
	}

	return
}

// FormatImage formats a program image as comma separated integers.
func FormatImage(image []int) string {
	words := make([]string, len(image))
	for n, value := range image {
		words[n] = strconv.Itoa(value)
	}

	return strings.Join(words, ",")
}
