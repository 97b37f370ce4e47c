package convert

import "testing"

func TestDecodeEntities(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"&lt;plaintext&gt;", "<plaintext>"},
		{"&quot;x&quot; &#39;y&#39;", `"x" 'y'`},
		{"a &amp; b", "a & b"},
		{"&amp;lt;", "&lt;"},
		{"&nbsp;", "&nbsp;"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := DecodeEntities(tt.in); got != tt.want {
			t.Errorf("DecodeEntities(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripBullet(t *testing.T) {
	if got := StripBullet("• 암호화하기 전의 메시지"); got != "암호화하기 전의 메시지" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := StripBullet("그냥 내용"); got != "그냥 내용" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := StripBullet("•    공백 많은 항목  "); got != "공백 많은 항목" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestStripOrdinal(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1. 내용", "내용"},
		{"12. 내용", "내용"},
		{"내용 1. 뒤에는 유지", "내용 1. 뒤에는 유지"},
		{"<b>태그는 유지</b>", "<b>태그는 유지</b>"},
	}
	for _, tt := range tests {
		if got := StripOrdinal(tt.in); got != tt.want {
			t.Errorf("StripOrdinal(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBreaksToNewlines(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"평문<br/>보충", "평문\n보충"},
		{"평문<br>보충", "평문\n보충"},
		{"평문<BR />보충", "평문\n보충"},
		{"변화 없음", "변화 없음"},
	}
	for _, tt := range tests {
		if got := BreaksToNewlines(tt.in); got != tt.want {
			t.Errorf("BreaksToNewlines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripTags(t *testing.T) {
	if got := StripTags("<span>1주</span> 암호 기술 개요"); got != "1주 암호 기술 개요" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := StripTags("<b><i>중첩</i></b>"); got != "중첩" {
		t.Fatalf("unexpected: %q", got)
	}
}
