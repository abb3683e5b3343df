package tem104

import "testing"

func TestReadFlashRequestLayout(t *testing.T) {
	frame, err := readFlashRequest(1, 0x0180, 0xFF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []byte{startOfRequest, 0x01, 0xFE, groupFlash, cmdFlash, 0x03, 0x01, 0x80, 0xFF}
	if len(frame) != len(want)+1 {
		t.Fatalf("frame length = %d, want %d", len(frame), len(want)+1)
	}
	for i, b := range want {
		if frame[i] != b {
			t.Errorf("frame[%d] = %#x, want %#x", i, frame[i], b)
		}
	}
	if sumFrame(frame) != 0xFF {
		t.Errorf("frame sum = %#x, want 0xff", sumFrame(frame))
	}
}

func TestIdentifyRequestLayout(t *testing.T) {
	frame, err := identifyRequest(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []byte{startOfRequest, 0x01, 0xFE, groupIdentify, cmdIdentify, 0x00}
	if len(frame) != len(want)+1 {
		t.Fatalf("frame length = %d, want %d", len(frame), len(want)+1)
	}
	for i, b := range want {
		if frame[i] != b {
			t.Errorf("frame[%d] = %#x, want %#x", i, frame[i], b)
		}
	}
}
