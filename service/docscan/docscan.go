package docscan

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/zigaplabs/super-wallet/core"
)

// NewMock returns an extractor that fabricates plausible fields from a hash
// of the uploaded content. The same upload always yields the same fields.
func NewMock() core.DocumentExtractor {
	return &mock{}
}

type mock struct{}

var names = []string{
	"KIM MINJUN",
	"LEE SEOYEON",
	"PARK JIHO",
	"CHOI SUA",
	"JUNG HAEUN",
	"KANG DOYUN",
}

func (m *mock) Extract(_ context.Context, kind string, content []byte) (core.DocumentFields, error) {
	sum := sha256.Sum256(content)

	name := names[int(sum[0])%len(names)]
	birth := fmt.Sprintf("19%02d-%02d-%02d", 40+sum[1]%50, 1+sum[2]%12, 1+sum[3]%28)
	serial := binary.BigEndian.Uint32(sum[4:8]) % 100_000_000

	switch kind {
	case "passport":
		return core.DocumentFields{
			"name":        name,
			"birth_date":  birth,
			"nationality": "KOR",
			"passport_no": fmt.Sprintf("M%08d", serial),
		}, nil
	case "id_card":
		return core.DocumentFields{
			"name":        name,
			"birth_date":  birth,
			"resident_no": fmt.Sprintf("%s-%d******", birth[2:4]+birth[5:7]+birth[8:10], 1+sum[8]%4),
		}, nil
	case "driver_license":
		return core.DocumentFields{
			"name":       name,
			"birth_date": birth,
			"license_no": fmt.Sprintf("%02d-%02d-%06d-%02d", 11+sum[9]%17, sum[10]%100, serial%1_000_000, sum[11]%100),
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown document kind %q", core.ErrInvalidArgument, kind)
	}
}
