// Package testing provides a markup testing framework for vitro.
//
// # Quick Start
//
// Create a tester, load markup, and make assertions:
//
//	func TestSaveButton(t *testing.T) {
//	    tester := vitrotest.NewTesterWithT(t)
//	    tester.SetStyles(`Button: {cursor: pointer}`)
//	    tester.Load(`<View><Button text="Save" onclick="set(text, Saved)">Save</Button></View>`)
//
//	    // Simulate input
//	    tester.Tap(vitrotest.ByText("Save"))
//	    tester.Pump()
//
//	    // Assert state
//	    if !tester.Find(vitrotest.ByText("Saved")).Exists() {
//	        t.Error("expected 'Saved' text")
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare native widget tree snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/save_button.snapshot.json")
//
// Update snapshots with:
//
//	VITRO_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Update Passes
//
// Attribute changes only schedule an update pass on the view. Nothing
// reaches the native widgets until the test pumps the loop:
//
//	label.SetAttribute("text", "Bye")
//	tester.Pump()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import vitrotest "github.com/go-drift/vitro/pkg/testing"
package testing
