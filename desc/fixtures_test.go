package desc

import "strings"

const gnomeShellDesc = `%FILENAME%
gnome-shell-1:46.2-1-x86_64.pkg.tar.zst

%NAME%
gnome-shell

%BASE%
gnome-shell

%VERSION%
1:46.2-1

%DESC%
Next generation desktop shell

%GROUPS%
gnome

%CSIZE%
2549870

%ISIZE%
14260301

%MD5SUM%
0b6fe2c3c4e4d0d2f7a2e0f1b7c3e5a9

%SHA256SUM%
9e5b7a0a7cbd0a7b6ac1b1e5bd7c6f9c2d4c3a4a5f2f3e1d0c9b8a7f6e5d4c3b

%URL%
https://wiki.gnome.org/Projects/GnomeShell

%LICENSE%
GPL-2.0-or-later

%ARCH%
x86_64

%BUILDDATE%
1717000000

%PACKAGER%
Jan Alexander Steffens (heftig) <heftig@archlinux.org>

%DEPENDS%
accountsservice
gcr-4
gjs
gnome-session

%OPTDEPENDS%
evolution-data-server: Evolution calendar integration
gnome-control-center: System settings
power-profiles-daemon: Power profile switching

%MAKEDEPENDS%
asciidoc
bash-completion
evolution-data-server
gi-docgen
git
gnome-keybindings
gobject-introspection
meson
sassc

%CHECKDEPENDS%
xorg-server-xvfb

`

// withUnknownField inserts an unrecognized field right before %DESC%.
func withUnknownField() string {
	return strings.Replace(gnomeShellDesc, "%DESC%", "%THISFIELDISUNKNOWN%\nFoo\nBar\nBaz\n\n%DESC%", 1)
}
