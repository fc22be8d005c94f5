package state

import (
	"fmt"
	"time"
)

const alarmLayout = "15:04"

func (c *Container) Alarms() []Alarm {
	return c.Snapshot().Alarms
}

// AddAlarm schedules a daily alarm at hhmm ("HH:MM", 24h).
func (c *Container) AddAlarm(hhmm string) (Alarm, bool) {
	at, err := time.Parse(alarmLayout, hhmm)
	if err != nil {
		return Alarm{}, false
	}
	a := Alarm{ID: c.newID(), Time: at.Format(alarmLayout), Active: true}
	c.snap.Alarms = append(c.snap.Alarms, a)
	c.commit()
	return a, true
}

func (c *Container) DeleteAlarm(id string) {
	for i, a := range c.snap.Alarms {
		if a.ID == id {
			c.snap.Alarms = append(c.snap.Alarms[:i], c.snap.Alarms[i+1:]...)
			c.commit()
			return
		}
	}
}

// MarkAlarmTriggered stamps the alarm with the current minute so it does
// not fire again within it.
func (c *Container) MarkAlarmTriggered(id string) {
	for i := range c.snap.Alarms {
		if c.snap.Alarms[i].ID == id {
			c.snap.Alarms[i].LastTriggered = minuteStamp(c.now())
			c.commit()
			return
		}
	}
}

// DueAlarms returns the active alarms set for now's minute that have not
// fired during it yet.
func (c *Container) DueAlarms(now time.Time) []Alarm {
	hhmm := now.Format(alarmLayout)
	stamp := minuteStamp(now)
	var due []Alarm
	for _, a := range c.snap.Alarms {
		if a.Active && a.Time == hhmm && a.LastTriggered != stamp {
			due = append(due, a)
		}
	}
	return due
}

func minuteStamp(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d %d:%d", t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
}
