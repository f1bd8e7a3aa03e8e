package util

import "testing"

func TestCountChanges(t *testing.T) {
	diff := `--- before
+++ after
@@ -1,3 +1,3 @@
 []int{
-  3,
   1,
+  3,
+  4,
`
	additions, removals := CountChanges(diff)
	if additions != 2 || removals != 1 {
		t.Errorf("CountChanges = %d, %d; want 2, 1", additions, removals)
	}

	if a, r := CountChanges(""); a != 0 || r != 0 {
		t.Errorf("CountChanges(\"\") = %d, %d", a, r)
	}
}

func TestStringInSlice(t *testing.T) {
	names := []string{"_default_", "verbose"}
	if !StringInSlice("verbose", names) {
		t.Error("verbose not found")
	}
	if StringInSlice("quiet", names) {
		t.Error("quiet found")
	}
	if StringInSlice("x", nil) {
		t.Error("found in nil slice")
	}
}
