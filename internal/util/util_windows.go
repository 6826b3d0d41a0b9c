//go:build windows

package util

import (
	"log/slog"
	"os"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
)

// IsRunFromGUI reports whether monkeys was started by double-clicking it in
// Explorer rather than from a shell.
func IsRunFromGUI() bool {
	hwnd, _, _ := procGetConsoleWindow.Call()
	if hwnd == 0 {
		return true
	}

	parentName := getParentProcessName()
	slog.Debug("Parent Process Info", "parentName", parentName)
	if isCliProcess(parentName) {
		return false
	}
	return strings.EqualFold(parentName, "explorer.exe")
}

func getParentProcessName() string {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(snapshot)

	var pe windows.ProcessEntry32
	pe.Size = uint32(unsafe.Sizeof(pe))

	currentPID := uint32(os.Getpid())
	var parentPID uint32

	for err = windows.Process32First(snapshot, &pe); err == nil; err = windows.Process32Next(snapshot, &pe) {
		if pe.ProcessID == currentPID {
			parentPID = pe.ParentProcessID
			break
		}
	}
	if parentPID == 0 {
		return ""
	}

	for err = windows.Process32First(snapshot, &pe); err == nil; err = windows.Process32Next(snapshot, &pe) {
		if pe.ProcessID == parentPID {
			return windows.UTF16ToString(pe.ExeFile[:])
		}
	}
	return ""
}

func isCliProcess(name string) bool {
	switch strings.ToLower(name) {
	case "cmd.exe", "powershell.exe", "pwsh.exe", "wt.exe", "conhost.exe", "windowsterminal.exe", "bash.exe":
		return true
	}
	return false
}
