package wm

const clientsJSON = `[
  {
    "address": "0x55d0a1b2c3d0",
    "mapped": true,
    "class": "kitty",
    "title": "htop",
    "initialClass": "kitty",
    "initialTitle": "kitty",
    "workspace": {"id": 2, "name": "2"}
  },
  {
    "address": "0x55d0a1b2c3e0",
    "mapped": false,
    "class": "",
    "title": "",
    "initialTitle": "",
    "workspace": {"id": -1, "name": ""}
  },
  {
    "address": "0x55d0a1b2c3f0",
    "mapped": true,
    "class": "org.gnome.Terminal",
    "title": "user@host: ~",
    "initialTitle": "dropdown",
    "workspace": {"id": -98, "name": "special:hyprdrop"}
  }
]`

const activeWorkspaceJSON = `{"id": 5, "name": "5", "monitor": "DP-1", "windows": 3}`
