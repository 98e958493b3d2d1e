// Package config manages user-level settings stored at
// ~/.create-my-internet/config.yaml. Settings only change the defaults the
// wizard offers (package manager, project name, target URL); every value can
// also be supplied through a CREATE_MY_INTERNET_* environment variable.
package config
