package validate

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Gunvolt24/similar_products/internal/ports"
)

// Summary — статистика проверки потока идентификаторов.
type Summary struct {
	Valid   int
	Invalid int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d valid / %d invalid", s.Valid, s.Invalid)
}

// CheckIDs — читает по одному идентификатору на строку, валидные пишет в writer
// без окружающих пробелов. Пустые строки пропускаются.
func CheckIDs(ctx context.Context, validator ports.ProductIDValidator, ir io.Reader, ow io.Writer) (Summary, error) {
	var res Summary

	scanner := bufio.NewScanner(ir)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := validator.Validate(ctx, line); err != nil {
			res.Invalid++
			continue
		}

		if _, err := io.WriteString(ow, line+"\n"); err != nil {
			return res, fmt.Errorf("write valid id: %w", err)
		}
		res.Valid++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}

// CheckFile — CheckIDs для файла; пустой путь означает stdin.
func CheckFile(ctx context.Context, validator ports.ProductIDValidator, filePath string, ow io.Writer) (Summary, error) {
	if filePath == "" {
		return CheckIDs(ctx, validator, os.Stdin, ow)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return Summary{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return CheckIDs(ctx, validator, file, ow)
}
