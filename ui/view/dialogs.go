package view

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Thin wrappers around the Tk native dialogs so the rest of the view layer
// never touches them directly.

// AskVideoFile shows an open dialog filtered to MP4 files. Returns "" when
// the user cancels.
func AskVideoFile() string {
	paths := GetOpenFile(
		Title("Add Video"),
		Filetypes([]FileType{{TypeName: "MP4", Extensions: []string{".mp4", ".MP4"}}}),
	)
	if len(paths) == 0 {
		return ""
	}
	return paths[0]
}

// AskSaveJSON shows a save dialog for ROI snapshot files.
func AskSaveJSON(initial string) string {
	return GetSaveFile(
		Title("Export"),
		Defaultextension(".json"),
		Initialfile(initial),
		Filetypes([]FileType{{TypeName: "JSON", Extensions: []string{".json"}}}),
	)
}

// AskOpenJSON shows an open dialog for ROI snapshot files. Returns "" when
// the user cancels.
func AskOpenJSON() string {
	paths := GetOpenFile(
		Title("Import"),
		Filetypes([]FileType{{TypeName: "JSON", Extensions: []string{".json"}}}),
	)
	if len(paths) == 0 {
		return ""
	}
	return paths[0]
}

// AskSaveCSV shows a save dialog for the CSV export.
func AskSaveCSV(initial string) string {
	return GetSaveFile(
		Title("Export CSV"),
		Defaultextension(".csv"),
		Initialfile(initial),
		Filetypes([]FileType{{TypeName: "CSV", Extensions: []string{".csv"}}}),
	)
}

// AskOutputDir asks for the batch output directory. Returns "" when the user
// cancels.
func AskOutputDir() string {
	return ChooseDirectory(Title("Select output folder"))
}

// AskDiscard asks whether unsaved ROI edits may be thrown away.
func AskDiscard() bool {
	answer := MessageBox(
		Title("ROIs not saved!"),
		Msg("The ROIs were not saved. Do you want to quit anyways?"),
		Icon("warning"),
		Type("okcancel"),
		Default("cancel"),
	)
	return answer == "ok"
}

// AskYesNo shows a generic yes/no question.
func AskYesNo(title, msg string) bool {
	return MessageBox(Title(title), Msg(msg), Icon("question"), Type("yesno"), Default("no")) == "yes"
}

// ShowError reports a failed operation.
func ShowError(title, msg string) {
	MessageBox(Title(title), Msg(msg), Icon("error"), Type("ok"))
}

// ShowInfo reports a completed operation.
func ShowInfo(title, msg string) {
	MessageBox(Title(title), Msg(msg), Icon("info"), Type("ok"))
}
