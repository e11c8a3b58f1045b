package webvpn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncryptURL(t *testing.T) {
	t.Parallel()

	// Known-good vectors captured from the live front end.
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "http with path",
			in:   "http://219.216.96.4/eams/homeExt.action",
			want: "https://webvpn.neu.edu.cn/http/77726476706e69737468656265737421a2a618d275613e1e275ec7f8/eams/homeExt.action",
		},
		{
			name: "http with trailing slash",
			in:   "http://219.216.96.4/eams/",
			want: "https://webvpn.neu.edu.cn/http/77726476706e69737468656265737421a2a618d275613e1e275ec7f8/eams/",
		},
		{
			name: "https",
			in:   "https://portal.neu.edu.cn/",
			want: "https://webvpn.neu.edu.cn/https/77726476706e69737468656265737421e0f85388263c265e7b1dc7a99c406d369a/",
		},
		{
			name: "scheme-relative without path",
			in:   "//ipgw.neu.edu.cn",
			want: "https://webvpn.neu.edu.cn/http/77726476706e69737468656265737421f9e7468b693e6d45300d8db9d6562d",
		},
		{
			name: "with port",
			in:   "http://210.30.200.128:8080/system/caslogin.jsp",
			want: "https://webvpn.neu.edu.cn/http-8080/77726476706e69737468656265737421a2a611d2746026022e58c7fdca0d/system/caslogin.jsp",
		},
		{
			name: "with port and query",
			in:   "http://202.118.8.7:8991/F/29DK3KT4SV9VBRI548R8UD3MBIT991BXE4HLXENCFEGE54551T-22111?func=find-b-0",
			want: "https://webvpn.neu.edu.cn/http-8991/77726476706e69737468656265737421a2a713d27661301e2646de/F/29DK3KT4SV9VBRI548R8UD3MBIT991BXE4HLXENCFEGE54551T-22111?func=find-b-0",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, EncryptURL(tc.in))
		})
	}
}

func TestEncryptURL_Deterministic(t *testing.T) {
	t.Parallel()

	const in = "http://219.216.96.4/eams/homeExt.action"
	first := EncryptURL(in)
	second := EncryptURL(in)
	require.Equal(t, first, second)
}

func TestEncryptURL_BareHost(t *testing.T) {
	t.Parallel()

	// No scheme prefix at all defaults to http.
	got := EncryptURL("ipgw.neu.edu.cn")
	require.Equal(t, "https://webvpn.neu.edu.cn/http/77726476706e69737468656265737421f9e7468b693e6d45300d8db9d6562d", got)
}
