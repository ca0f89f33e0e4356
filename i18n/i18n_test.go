package i18n

import "testing"

func TestReverseStatus(t *testing.T) {
	zh := New("zh")
	if got := zh.ReverseStatus("进行中"); got != "ongoing" {
		t.Fatalf("want ongoing, got %q", got)
	}
	if got := zh.ReverseStatus("黑名单"); got != "blacklist" {
		t.Fatalf("want blacklist, got %q", got)
	}
	en := New("en")
	if got := en.ReverseStatus("Completed"); got != "completed" {
		t.Fatalf("want completed, got %q", got)
	}
	// token 原样通过
	if got := en.ReverseStatus("ongoing"); got != "ongoing" {
		t.Fatalf("token should pass through, got %q", got)
	}
	// 未知标签原样返回
	if got := en.ReverseStatus("whatever"); got != "whatever" {
		t.Fatalf("unknown label should pass through, got %q", got)
	}
}

func TestTFallback(t *testing.T) {
	tr := New("zh")
	if got := tr.T("no_such_key"); got != "no_such_key" {
		t.Fatalf("missing key should return the key, got %q", got)
	}
}

func TestSetLang(t *testing.T) {
	tr := New("zh")
	if tr.T("ok") != "确定" {
		t.Fatal("zh table broken")
	}
	if !tr.SetLang("en") {
		t.Fatal("en should be accepted")
	}
	if tr.T("ok") != "OK" {
		t.Fatal("en table broken")
	}
	if tr.SetLang("fr") {
		t.Fatal("unknown lang should be rejected")
	}
	if tr.Lang() != "en" {
		t.Fatal("rejected switch should not change lang")
	}
}

func TestYesNo(t *testing.T) {
	zh := New("zh")
	if zh.YesNo(true) != "是" || zh.YesNo(false) != "否" {
		t.Fatal("zh yes/no broken")
	}
}

func TestUnknownLangDefaultsToZh(t *testing.T) {
	if New("xx").Lang() != "zh" {
		t.Fatal("unknown lang should fall back to zh")
	}
}
