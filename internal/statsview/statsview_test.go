package statsview

import "testing"

func TestEndpoint(t *testing.T) {
	cases := []struct {
		addr, listen, url string
	}{
		{"", "localhost:12600", "http://localhost:12600/debug/statsview"},
		{":9000", "localhost:9000", "http://localhost:9000/debug/statsview"},
		{"0.0.0.0:8080", "0.0.0.0:8080", "http://0.0.0.0:8080/debug/statsview"},
	}
	for _, tc := range cases {
		listen, url, err := Endpoint(tc.addr)
		if err != nil {
			t.Fatalf("Endpoint(%q) returned %v", tc.addr, err)
		}
		if listen != tc.listen || url != tc.url {
			t.Fatalf("Endpoint(%q) = %q, %q, expected %q, %q", tc.addr, listen, url, tc.listen, tc.url)
		}
	}
}

func TestEndpointRejectsBadAddr(t *testing.T) {
	for _, addr := range []string{"localhost", "localhost:", "a:b:c"} {
		if _, _, err := Endpoint(addr); err == nil {
			t.Fatalf("Endpoint(%q) accepted a bad address", addr)
		}
	}
}
